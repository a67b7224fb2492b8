// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/imgnorm/pkg/types"
)

// IsNormalized reports whether the file at path already has the output
// extension and decodes to size×size pixels. Only the image header is
// read. Any open or decode failure yields false, which routes the file to
// NormalizeFile where the failure is reported.
func IsNormalized(path string, size int) bool {
	if !strings.EqualFold(filepath.Ext(path), types.OutputExt) {
		return false
	}

	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return false
	}
	return cfg.Width == size && cfg.Height == size
}

// HasInputExt reports whether name carries one of the accepted input
// extensions.
func HasInputExt(name string) bool {
	return types.InputExts[strings.ToLower(filepath.Ext(name))]
}
