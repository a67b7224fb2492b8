// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
)

const (
	// DefaultRoot is the dataset directory used when none is configured.
	DefaultRoot = "./dataset"

	// DefaultTargetSize is the side length, in pixels, of normalized images.
	DefaultTargetSize = 224

	// OutputExt is the extension every normalized image carries.
	OutputExt = ".jpg"

	// OutputQuality is the JPEG quality used when re-encoding.
	OutputQuality = 95
)

// InputExts is the allow-list of extensions considered during traversal.
// Matching is case-insensitive; keys are lowercase.
var InputExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".gif":  true,
}

// Taxonomy is the two-level directory classification that drives
// traversal: <root>/<category>/<age-range>/.
type Taxonomy struct {
	// Categories are the first-level folder names, visited in order.
	Categories []string `json:"categories" yaml:"categories" mapstructure:"categories"`

	// AgeRanges are the second-level folder names, visited in order.
	AgeRanges []string `json:"age_ranges" yaml:"age_ranges" mapstructure:"age_ranges"`
}

// DefaultTaxonomy returns the category × age-range layout of the dataset.
func DefaultTaxonomy() Taxonomy {
	return Taxonomy{
		Categories: []string{"famous", "not_famous"},
		AgeRanges:  []string{"10-20", "21-30", "31-40", "41-50", "51-60", "61-70", "71-80", "81-90", "91+"},
	}
}

// NormalizeConfig holds settings for a normalization run.
type NormalizeConfig struct {
	// Root is the dataset directory containing the category folders.
	Root string `json:"root" yaml:"root" mapstructure:"root"`

	// TargetSize is the side length of the square output images (default 224).
	TargetSize int `json:"target_size" yaml:"target_size" mapstructure:"target_size"`

	// Taxonomy is the folder layout under Root.
	Taxonomy Taxonomy `json:"taxonomy" yaml:"taxonomy" mapstructure:"taxonomy"`
}

// DefaultConfig returns the configuration the tool runs with when no
// config file, environment variable, or flag overrides it.
func DefaultConfig() NormalizeConfig {
	return NormalizeConfig{
		Root:       DefaultRoot,
		TargetSize: DefaultTargetSize,
		Taxonomy:   DefaultTaxonomy(),
	}
}

// Validate reports the first problem that would make a run meaningless.
func (c NormalizeConfig) Validate() error {
	if c.Root == "" {
		return errors.New("root directory cannot be empty")
	}
	if c.TargetSize <= 0 {
		return fmt.Errorf("target size must be positive, got %d", c.TargetSize)
	}
	if len(c.Taxonomy.Categories) == 0 {
		return errors.New("taxonomy needs at least one category")
	}
	if len(c.Taxonomy.AgeRanges) == 0 {
		return errors.New("taxonomy needs at least one age range")
	}
	return nil
}
