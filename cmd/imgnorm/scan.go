package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/pdiddy/imgnorm/internal/dataset"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "List images that normalize would rewrite, without changing anything",
	Long: `Scan walks the dataset the same way normalize does and reports every
image that is not yet normalized, with its current size and format.
Unreadable files are listed as well. JPEGs carrying an EXIF orientation
are flagged, because re-encoding drops the tag and the image will display
unrotated afterwards.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		_, err = dataset.Scan(ctx, cfg, cmd.OutOrStdout())
		if errors.Is(err, dataset.ErrRootNotFound) {
			reportMissingRoot(cmd.OutOrStdout(), cfg.Root)
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
