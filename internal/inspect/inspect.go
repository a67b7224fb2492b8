// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package inspect reads image headers and EXIF metadata without decoding
// pixel data.
package inspect

import (
	"fmt"
	"image"
	"io"
	"os"

	// Header decoders for the accepted input formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/rwcarlsen/goexif/exif"
	_ "golang.org/x/image/bmp"

	"github.com/pdiddy/imgnorm/pkg/types"
)

// File returns format, dimensions and EXIF orientation for the image at
// path. A JPEG without EXIF data reports orientation 0.
func File(path string) (types.ImageInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return types.ImageInfo{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return types.ImageInfo{}, fmt.Errorf("reading image header of %s: %w", path, err)
	}

	info := types.ImageInfo{
		Path:   path,
		Format: format,
		Width:  cfg.Width,
		Height: cfg.Height,
	}

	if format == "jpeg" {
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return info, fmt.Errorf("rewinding %s: %w", path, err)
		}
		info.Orientation = orientation(f)
	}
	return info, nil
}

// orientation returns the EXIF orientation tag, or 0 when absent or
// unreadable.
func orientation(r io.Reader) int {
	x, err := exif.Decode(r)
	if err != nil {
		return 0
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 0
	}
	v, err := tag.Int(0)
	if err != nil {
		return 0
	}
	return v
}
