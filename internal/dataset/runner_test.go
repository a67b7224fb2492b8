// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"bytes"
	"context"
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/imgnorm/internal/metrics"
	"github.com/pdiddy/imgnorm/pkg/types"
)

func dims(t *testing.T, path string) (int, int) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	require.NoError(t, err)
	return cfg.Width, cfg.Height
}

func TestRun_RootNotFound(t *testing.T) {
	cfg := testConfig(t)
	cfg.Root = filepath.Join(cfg.Root, "missing")

	var out bytes.Buffer
	summary, err := NewRunner(cfg, &out, nil).Run(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRootNotFound))
	assert.Zero(t, summary.Total())
	assert.Empty(t, out.String())
}

func TestRun(t *testing.T) {
	cfg := testConfig(t)

	young := mkdir(t, cfg.Root, "famous", "10-20")
	writeImage(t, young, "a.png", 403, 302)
	ready := writeImage(t, young, "b.jpg", 224, 224)
	writeFile(t, young, "broken.gif", "GIF89a garbage")
	writeFile(t, young, "readme.txt", "not an image")
	mkdir(t, young, "nested.jpg")

	mkdir(t, cfg.Root, "famous", "21-30") // exists, empty

	old := mkdir(t, cfg.Root, "not_famous", "91+")
	writeImage(t, old, "d.BMP", 100, 50)

	readyBefore, err := os.ReadFile(ready)
	require.NoError(t, err)

	m := metrics.New()
	var out bytes.Buffer
	summary, err := NewRunner(cfg, &out, m).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Processed)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 1, summary.Failed)
	require.Len(t, summary.Folders, 2)

	first := summary.Folders[0]
	assert.Equal(t, "famous/10-20", first.Label())
	require.Len(t, first.Errors, 1)
	assert.Equal(t, "broken.gif", first.Errors[0].Name)
	assert.Equal(t, "decode", string(first.Errors[0].Kind))

	log := out.String()
	assert.Contains(t, log, "famous/10-20: 1 processed, 1 skipped\n")
	assert.Contains(t, log, "  ⚠ Error: broken.gif (decode: ")
	assert.Contains(t, log, "not_famous/91+: 1 processed, 0 skipped\n")
	assert.NotContains(t, log, "famous/21-30")
	assert.Contains(t, log, "  Images processed: 2\n")
	assert.Contains(t, log, "  Images skipped: 1\n")

	// Converted originals are replaced by .jpg files at the target size.
	for _, p := range []string{filepath.Join(young, "a.png"), filepath.Join(old, "d.BMP")} {
		_, err := os.Stat(p)
		assert.True(t, os.IsNotExist(err), "%s should be removed", p)
	}
	for _, p := range []string{filepath.Join(young, "a.jpg"), filepath.Join(old, "d.jpg")} {
		w, h := dims(t, p)
		assert.Equal(t, 224, w, p)
		assert.Equal(t, 224, h, p)
	}

	// Already normalized files are not rewritten.
	readyAfter, err := os.ReadFile(ready)
	require.NoError(t, err)
	assert.Equal(t, readyBefore, readyAfter)

	// Undecodable files stay where they are.
	_, err = os.Stat(filepath.Join(young, "broken.gif"))
	assert.NoError(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.FilesTotal.WithLabelValues(metrics.ResultProcessed)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FilesTotal.WithLabelValues(metrics.ResultSkipped)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ErrorsTotal.WithLabelValues("decode")))
}

func TestRun_SecondRunSkipsEverything(t *testing.T) {
	cfg := testConfig(t)
	dir := mkdir(t, cfg.Root, "not_famous", "41-50")
	writeImage(t, dir, "x.png", 640, 480)
	writeImage(t, dir, "y.jpeg", 300, 400)
	writeImage(t, dir, "z.jpg", 10, 10)

	runner := NewRunner(cfg, &bytes.Buffer{}, nil)

	first, err := runner.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, first.Processed)
	assert.Zero(t, first.Skipped)

	second, err := runner.Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, second.Processed)
	assert.Equal(t, 3, second.Skipped)

	names, err := ListImages(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"x.jpg", "y.jpg", "z.jpg"}, names)
}

func TestRun_EmptyTreeReportsZero(t *testing.T) {
	cfg := testConfig(t)
	dir := mkdir(t, cfg.Root, "famous", "31-40")
	writeFile(t, dir, "notes.txt", "x")

	var out bytes.Buffer
	summary, err := NewRunner(cfg, &out, nil).Run(context.Background())
	require.NoError(t, err)

	assert.Zero(t, summary.Total())
	assert.Empty(t, summary.Folders)
	assert.NotContains(t, out.String(), "famous/31-40")
	assert.Contains(t, out.String(), "Images processed: 0")
}

func TestRun_CountsMatchFiles(t *testing.T) {
	cfg := testConfig(t)
	matching := 0
	for i, ageRange := range cfg.Taxonomy.AgeRanges[:4] {
		dir := mkdir(t, cfg.Root, "famous", ageRange)
		for j := 0; j <= i; j++ {
			writeImage(t, dir, string(rune('a'+j))+".png", 40+j, 30)
			matching++
		}
		writeFile(t, dir, "bad.jpg", "nope")
		matching++
	}

	summary, err := NewRunner(cfg, &bytes.Buffer{}, nil).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, summary.Failed)
	assert.Equal(t, matching-summary.Failed, summary.Processed+summary.Skipped)
	assert.Equal(t, matching, summary.Total())
}

func TestRun_Cancelled(t *testing.T) {
	cfg := testConfig(t)
	dir := mkdir(t, cfg.Root, "famous", "10-20")
	input := writeImage(t, dir, "a.png", 50, 40)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	summary, err := NewRunner(cfg, &out, nil).Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, summary.Processed)
	assert.Contains(t, out.String(), "Total summary:")

	_, err = os.Stat(input)
	assert.NoError(t, err, "cancelled run must not touch files")
}

func TestRun_UnlistableFolderIsRecorded(t *testing.T) {
	cfg := testConfig(t)

	// famous/10-20 exists but is a plain file, so listing it fails with
	// something other than "not exist".
	mkdir(t, cfg.Root, "famous")
	writeFile(t, filepath.Join(cfg.Root, "famous"), "10-20", "not a folder")

	later := mkdir(t, cfg.Root, "famous", "21-30")
	writeImage(t, later, "a.png", 60, 40)

	m := metrics.New()
	var out bytes.Buffer
	summary, err := NewRunner(cfg, &out, m).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, summary.Folders, 2)
	broken := summary.Folders[0]
	assert.Equal(t, "famous/10-20", broken.Label())
	require.Len(t, broken.Errors, 1)
	assert.Equal(t, "10-20", broken.Errors[0].Name)
	assert.Equal(t, types.ErrorFilesystem, broken.Errors[0].Kind)
	assert.Zero(t, broken.Processed)

	assert.Equal(t, 1, summary.Folders[1].Processed)
	assert.Equal(t, 1, summary.Processed)
	assert.Equal(t, 1, summary.Failed)

	assert.Contains(t, out.String(), "famous/10-20: 0 processed, 0 skipped\n  ⚠ Error: 10-20 (")
	assert.Contains(t, out.String(), "famous/21-30: 1 processed, 0 skipped\n")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ErrorsTotal.WithLabelValues("filesystem")))
}
