// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/imgnorm/internal/inspect"
	"github.com/pdiddy/imgnorm/internal/normalize"
	"github.com/pdiddy/imgnorm/pkg/types"
)

// ScanSummary counts what a normalization run would find.
type ScanSummary struct {
	Normalized int `json:"normalized" yaml:"normalized"`
	Pending    int `json:"pending" yaml:"pending"`
	Unreadable int `json:"unreadable" yaml:"unreadable"`

	// Rotated counts pending images whose EXIF orientation is lost on
	// re-encoding.
	Rotated int `json:"rotated" yaml:"rotated"`
}

// Total returns the number of files matching the input allow-list.
func (s ScanSummary) Total() int {
	return s.Normalized + s.Pending + s.Unreadable
}

// Scan walks the same folders as Runner.Run without modifying anything and
// writes one line per image that a run would touch: its current size and
// format, or the reason it cannot be read.
func Scan(ctx context.Context, cfg types.NormalizeConfig, w io.Writer) (ScanSummary, error) {
	var summary ScanSummary

	if err := CheckRoot(cfg.Root); err != nil {
		return summary, err
	}

	for _, folder := range Folders(cfg) {
		names, err := ListImages(folder.Path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			fmt.Fprintf(w, "%s/%s: %v\n", folder.Category, folder.AgeRange, err)
			continue
		}
		if len(names) == 0 {
			continue
		}

		fmt.Fprintf(w, "%s/%s:\n", folder.Category, folder.AgeRange)
		for _, name := range names {
			select {
			case <-ctx.Done():
				return summary, ctx.Err()
			default:
			}

			path := filepath.Join(folder.Path, name)
			if normalize.IsNormalized(path, cfg.TargetSize) {
				summary.Normalized++
				continue
			}

			info, err := inspect.File(path)
			if err != nil {
				summary.Unreadable++
				fmt.Fprintf(w, "  unreadable %s (%v)\n", name, err)
				continue
			}

			summary.Pending++
			line := fmt.Sprintf("  pending    %s %dx%d %s", name, info.Width, info.Height, info.Format)
			if info.Rotated() {
				summary.Rotated++
				line += fmt.Sprintf(" [EXIF orientation %d will be dropped]", info.Orientation)
			}
			fmt.Fprintln(w, line)
		}
	}

	fmt.Fprintf(w, "\n%d normalized, %d pending, %d unreadable (total: %d)\n",
		summary.Normalized, summary.Pending, summary.Unreadable, summary.Total())
	if summary.Rotated > 0 {
		fmt.Fprintf(w, "%d pending image(s) carry an EXIF rotation\n", summary.Rotated)
	}
	return summary, nil
}
