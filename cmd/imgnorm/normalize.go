package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/pdiddy/imgnorm/internal/dataset"
	"github.com/pdiddy/imgnorm/internal/metrics"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Crop, resize, and re-encode every image in the dataset",
	Long: `Normalize visits each <category>/<age-range> folder of the dataset and
rewrites every .jpg, .jpeg, .png, .bmp, and .gif file as a center-cropped
square JPEG (quality 95) of the target size. Non-JPEG originals are deleted
once their .jpg replacement is written. Files already at the target size
with a .jpg extension are skipped.

Per-file failures are listed under their folder and do not stop the run.`,
	RunE: runNormalize,
}

func init() {
	normalizeCmd.Flags().String("summary-file", "", "also write the run summary as YAML to this path")
	normalizeCmd.Flags().String("metrics-file", "", "write Prometheus metrics in textfile format to this path")

	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	summaryFile, _ := cmd.Flags().GetString("summary-file")
	metricsFile, _ := cmd.Flags().GetString("metrics-file")

	var m *metrics.Metrics
	if metricsFile != "" {
		m = metrics.New()
	}

	out := cmd.OutOrStdout()
	dataset.PrintBanner(out, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	summary, runErr := dataset.NewRunner(cfg, out, m).Run(ctx)
	if errors.Is(runErr, dataset.ErrRootNotFound) {
		reportMissingRoot(out, cfg.Root)
		return runErr
	}

	if summaryFile != "" {
		if err := dataset.SaveSummary(summaryFile, summary); err != nil {
			return err
		}
	}
	if err := m.WriteTextfile(metricsFile); err != nil {
		return err
	}
	return runErr
}

// reportMissingRoot explains a missing dataset directory. main does not
// print ErrRootNotFound again.
func reportMissingRoot(w io.Writer, root string) {
	fmt.Fprintf(w, "\nError: dataset directory '%s' not found\n", root)
	fmt.Fprintln(w, "Point --root (or IMGNORM_ROOT, or root: in imgnorm.yaml) at your dataset")
}
