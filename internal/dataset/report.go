// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/imgnorm/pkg/types"
)

const bannerWidth = 50

// PrintBanner writes the settings a run is about to use.
func PrintBanner(w io.Writer, cfg types.NormalizeConfig) {
	fmt.Fprintln(w, "Starting image normalization...")
	fmt.Fprintf(w, "Dataset: %s\n", cfg.Root)
	fmt.Fprintf(w, "Target size: %dx%d\n", cfg.TargetSize, cfg.TargetSize)
	fmt.Fprintf(w, "Format: JPG (quality %d)\n", types.OutputQuality)
	fmt.Fprintln(w, "Crop: centered square")
	fmt.Fprintln(w)
}

// PrintFolder writes the one-line folder summary followed by one line per
// failed file.
func PrintFolder(w io.Writer, fs types.FolderSummary) {
	fmt.Fprintf(w, "%s: %d processed, %d skipped\n", fs.Label(), fs.Processed, fs.Skipped)
	for _, e := range fs.Errors {
		fmt.Fprintf(w, "  ⚠ Error: %s\n", e)
	}
}

// PrintTotals writes the closing banner with the global counts.
func PrintTotals(w io.Writer, s types.RunSummary) {
	rule := strings.Repeat("=", bannerWidth)
	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintln(w, "Total summary:")
	fmt.Fprintf(w, "  Images processed: %d\n", s.Processed)
	fmt.Fprintf(w, "  Images skipped: %d\n", s.Skipped)
	if s.HasFailures() {
		fmt.Fprintf(w, "  Images failed: %d\n", s.Failed)
	}
	fmt.Fprintln(w, rule)
}

// WriteSummaryYAML writes s as YAML to w.
func WriteSummaryYAML(w io.Writer, s types.RunSummary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}
	return enc.Close()
}

// SaveSummary writes s as YAML to path.
func SaveSummary(path string, s types.RunSummary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating summary file %s: %w", path, err)
	}
	if err := WriteSummaryYAML(f, s); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
