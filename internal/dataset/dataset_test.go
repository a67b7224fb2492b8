// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/pdiddy/imgnorm/pkg/types"
)

// testConfig returns the default configuration rooted at a fresh temp dir.
func testConfig(t *testing.T) types.NormalizeConfig {
	t.Helper()
	cfg := types.DefaultConfig()
	cfg.Root = t.TempDir()
	return cfg
}

func mkdir(t *testing.T, parts ...string) string {
	t.Helper()
	dir := filepath.Join(parts...)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	return dir
}

// writeImage writes a w×h mid-gray image to dir/name, choosing the codec
// from the extension.
func writeImage(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 90, G: 120, B: 150, A: 255})
		}
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	switch filepath.Ext(name) {
	case ".jpg", ".JPG", ".jpeg":
		require.NoError(t, jpeg.Encode(f, img, nil))
	case ".png":
		require.NoError(t, png.Encode(f, img))
	case ".bmp", ".BMP":
		require.NoError(t, bmp.Encode(f, img))
	default:
		t.Fatalf("no encoder for %s", name)
	}
	return path
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
