// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pdiddy/imgnorm/internal/metrics"
	"github.com/pdiddy/imgnorm/internal/normalize"
	"github.com/pdiddy/imgnorm/pkg/types"
)

// Runner normalizes every image of a dataset tree, one file at a time.
type Runner struct {
	cfg        types.NormalizeConfig
	normalizer *normalize.Normalizer
	metrics    *metrics.Metrics
	out        io.Writer
}

// NewRunner creates a runner for cfg that reports progress to out. m may
// be nil.
func NewRunner(cfg types.NormalizeConfig, out io.Writer, m *metrics.Metrics) *Runner {
	return &Runner{
		cfg:        cfg,
		normalizer: normalize.New(cfg.TargetSize),
		metrics:    m,
		out:        out,
	}
}

// Run visits every taxonomy folder in order and normalizes the images it
// holds. Missing folders are skipped silently. Per-file failures are
// recorded in the summary and never stop the run. A summary line is
// printed after each folder that held matching files, and the totals after
// the last folder.
//
// Run returns an error wrapping ErrRootNotFound, without touching anything,
// when the root is missing. If ctx is cancelled the run stops between
// files and returns the partial summary with ctx.Err().
func (r *Runner) Run(ctx context.Context) (types.RunSummary, error) {
	var summary types.RunSummary

	if err := CheckRoot(r.cfg.Root); err != nil {
		return summary, err
	}

	var runErr error
	for _, folder := range Folders(r.cfg) {
		fs, err := r.runFolder(ctx, folder)
		if !fs.Empty() {
			PrintFolder(r.out, fs)
		}
		summary.Add(fs)
		if err != nil {
			runErr = err
			break
		}
	}

	PrintTotals(r.out, summary)
	r.metrics.MarkFinished(time.Now())
	return summary, runErr
}

func (r *Runner) runFolder(ctx context.Context, folder Folder) (types.FolderSummary, error) {
	fs := types.FolderSummary{Category: folder.Category, AgeRange: folder.AgeRange}

	names, err := ListImages(folder.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return fs, nil
		}
		fs.Errors = append(fs.Errors, types.FileError{
			Name:    folder.AgeRange,
			Kind:    types.ErrorFilesystem,
			Message: err.Error(),
		})
		r.metrics.IncFailed(types.ErrorFilesystem)
		return fs, nil
	}

	for _, name := range names {
		select {
		case <-ctx.Done():
			return fs, ctx.Err()
		default:
		}

		path := filepath.Join(folder.Path, name)

		if normalize.IsNormalized(path, r.cfg.TargetSize) {
			fs.Skipped++
			r.metrics.IncSkipped()
			continue
		}

		start := time.Now()
		res := r.normalizer.NormalizeFile(path)
		if !res.OK() {
			kind := normalize.ErrorKind(res.Err)
			fs.Errors = append(fs.Errors, types.FileError{
				Name:    name,
				Kind:    kind,
				Message: res.Err.Error(),
			})
			r.metrics.IncFailed(kind)
			continue
		}
		fs.Processed++
		r.metrics.IncProcessed(time.Since(start))
	}

	return fs, nil
}
