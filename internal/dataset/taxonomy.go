// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dataset walks a <root>/<category>/<age-range>/ image tree,
// normalizes every image it finds, and accumulates a run summary.
package dataset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdiddy/imgnorm/internal/normalize"
	"github.com/pdiddy/imgnorm/pkg/types"
)

// ErrRootNotFound is returned before any processing when the dataset root
// does not exist.
var ErrRootNotFound = errors.New("dataset directory not found")

// Folder is one leaf directory of the taxonomy.
type Folder struct {
	Category string
	AgeRange string
	Path     string
}

// Folders lists every category × age-range folder under cfg.Root in
// traversal order, whether or not it exists.
func Folders(cfg types.NormalizeConfig) []Folder {
	folders := make([]Folder, 0, len(cfg.Taxonomy.Categories)*len(cfg.Taxonomy.AgeRanges))
	for _, category := range cfg.Taxonomy.Categories {
		for _, ageRange := range cfg.Taxonomy.AgeRanges {
			folders = append(folders, Folder{
				Category: category,
				AgeRange: ageRange,
				Path:     filepath.Join(cfg.Root, category, ageRange),
			})
		}
	}
	return folders
}

// CheckRoot returns an error wrapping ErrRootNotFound when root is missing
// or is not a directory.
func CheckRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrRootNotFound, root)
		}
		return fmt.Errorf("checking dataset directory %s: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrRootNotFound, root)
	}
	return nil
}

// ListImages returns the names of regular files in dir whose extension is
// in the input allow-list, sorted by name. Symlinks are followed. A missing
// dir yields an error satisfying os.IsNotExist.
func ListImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if !normalize.HasInputExt(name) {
			continue
		}
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}
