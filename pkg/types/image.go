// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ImageInfo describes an image file as found on disk, without decoding
// its pixels.
type ImageInfo struct {
	// Path is the filesystem path of the image.
	Path string `json:"path" yaml:"path"`

	// Format is the codec name reported by the decoder (e.g. "jpeg", "png").
	Format string `json:"format" yaml:"format"`

	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`

	// Orientation is the EXIF orientation tag (1-8), or 0 when the file
	// carries no EXIF data.
	Orientation int `json:"orientation,omitempty" yaml:"orientation,omitempty"`
}

// Square reports whether the image has equal width and height.
func (i ImageInfo) Square() bool {
	return i.Width == i.Height
}

// Rotated reports whether viewers apply a rotation or flip to this image.
// Re-encoding drops EXIF, so such images change their apparent orientation.
func (i ImageInfo) Rotated() bool {
	return i.Orientation > 1
}
