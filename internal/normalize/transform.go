// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"image"
	"image/color"
	"image/jpeg"
	"io"
	"path/filepath"
	"strings"

	// Decoders for the accepted input formats.
	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"github.com/pdiddy/imgnorm/pkg/types"
)

// Decode reads a full image from r. Failures are returned as *DecodeError.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	return img, nil
}

// ToRGB drops the alpha channel of img, keeping the stored (unpremultiplied)
// color of every pixel. The result is opaque and has the same bounds.
func ToRGB(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			dst.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
		}
	}
	return dst
}

// Resize scales img to size×size with the Catmull-Rom kernel. The caller
// crops first; non-square input is stretched.
func Resize(img image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// Transform produces the normalized pixels for img: RGB conversion,
// center crop, then resize to size×size.
func Transform(img image.Image, size int) *image.RGBA {
	return Resize(CenterCrop(ToRGB(img)), size)
}

// Encode writes img as JPEG at the output quality. Failures are returned
// as *EncodeError.
func Encode(w io.Writer, img image.Image) error {
	if err := jpeg.Encode(w, img, &jpeg.Options{Quality: types.OutputQuality}); err != nil {
		return &EncodeError{Err: err}
	}
	return nil
}

// OutputPath returns path with its extension replaced by the output
// extension. Leading dots of the file name do not start an extension, so
// ".png" becomes ".png.jpg".
func OutputPath(path string) string {
	stem := strings.TrimLeft(filepath.Base(path), ".")
	if !strings.Contains(stem, ".") {
		return path + types.OutputExt
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + types.OutputExt
}
