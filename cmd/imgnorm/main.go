// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the imgnorm CLI, which normalizes a
// labeled image dataset to square fixed-size JPEGs.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/imgnorm/internal/dataset"
	"github.com/pdiddy/imgnorm/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the imgnorm CLI.
var rootCmd = &cobra.Command{
	Use:   "imgnorm",
	Short: "Normalize a labeled image dataset in place",
	Long: `imgnorm walks a dataset laid out as <root>/<category>/<age-range>/ and
rewrites every image as a center-cropped square JPEG of a fixed size.
Images that already have the target size and a .jpg extension are left
untouched, so repeated runs only process new files.

Settings come from flags, IMGNORM_* environment variables, or an
imgnorm.yaml config file, in that order of precedence.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	defaults := types.DefaultConfig()
	viper.SetDefault("root", defaults.Root)
	viper.SetDefault("target_size", defaults.TargetSize)
	viper.SetDefault("taxonomy.categories", defaults.Taxonomy.Categories)
	viper.SetDefault("taxonomy.age_ranges", defaults.Taxonomy.AgeRanges)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./imgnorm.yaml or ~/.config/imgnorm/imgnorm.yaml)")
	rootCmd.PersistentFlags().String("root", defaults.Root, "dataset directory containing the category folders")
	rootCmd.PersistentFlags().Int("size", defaults.TargetSize, "side length in pixels of normalized images")

	viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))
	viper.BindPFlag("target_size", rootCmd.PersistentFlags().Lookup("size"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("imgnorm")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "imgnorm"))
		}
	}

	viper.SetEnvPrefix("IMGNORM")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig resolves the effective configuration from viper.
func loadConfig() (types.NormalizeConfig, error) {
	return decodeConfig(viper.GetViper())
}

func decodeConfig(v *viper.Viper) (types.NormalizeConfig, error) {
	cfg := types.DefaultConfig()
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		// normalize already explained a missing dataset directory.
		if !errors.Is(err, dataset.ErrRootNotFound) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
