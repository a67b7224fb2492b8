// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import "image"

// CenterCropRect returns the largest square centered in bounds. Offsets
// round down when the difference between sides is odd.
func CenterCropRect(bounds image.Rectangle) image.Rectangle {
	w, h := bounds.Dx(), bounds.Dy()
	side := min(w, h)
	left := bounds.Min.X + (w-side)/2
	top := bounds.Min.Y + (h-side)/2
	return image.Rect(left, top, left+side, top+side)
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// CenterCrop returns the centered square region of img. Images that do not
// support SubImage are copied into an RGBA first.
func CenterCrop(img image.Image) image.Image {
	r := CenterCropRect(img.Bounds())
	if si, ok := img.(subImager); ok {
		return si.SubImage(r)
	}
	return ToRGB(img).SubImage(r)
}
