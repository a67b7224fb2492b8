// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// ErrorKind classifies a per-file failure.
type ErrorKind string

const (
	ErrorDecode     ErrorKind = "decode"
	ErrorEncode     ErrorKind = "encode"
	ErrorFilesystem ErrorKind = "filesystem"
	ErrorOther      ErrorKind = "other"
)

// FileError records a file that could not be normalized.
type FileError struct {
	// Name is the file name within its folder.
	Name    string    `json:"name" yaml:"name"`
	Kind    ErrorKind `json:"kind" yaml:"kind"`
	Message string    `json:"message" yaml:"message"`
}

func (e FileError) String() string {
	return fmt.Sprintf("%s (%s)", e.Name, e.Message)
}

// FolderSummary holds the outcome of one <category>/<age-range> folder.
type FolderSummary struct {
	Category  string      `json:"category" yaml:"category"`
	AgeRange  string      `json:"age_range" yaml:"age_range"`
	Processed int         `json:"processed" yaml:"processed"`
	Skipped   int         `json:"skipped" yaml:"skipped"`
	Errors    []FileError `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// Label returns the folder's "<category>/<age-range>" name.
func (f FolderSummary) Label() string {
	return f.Category + "/" + f.AgeRange
}

// Empty reports whether the folder contained no matching files.
func (f FolderSummary) Empty() bool {
	return f.Processed == 0 && f.Skipped == 0 && len(f.Errors) == 0
}

// RunSummary holds counts for a whole normalization run. It lives only
// for the duration of the run.
type RunSummary struct {
	Folders   []FolderSummary `json:"folders" yaml:"folders"`
	Processed int             `json:"processed" yaml:"processed"`
	Skipped   int             `json:"skipped" yaml:"skipped"`
	Failed    int             `json:"failed" yaml:"failed"`
}

// Add folds a folder's counts into the run totals. Empty folders are not
// kept.
func (s *RunSummary) Add(f FolderSummary) {
	s.Processed += f.Processed
	s.Skipped += f.Skipped
	s.Failed += len(f.Errors)
	if !f.Empty() {
		s.Folders = append(s.Folders, f)
	}
}

// Total returns the number of files that matched the input allow-list.
func (s RunSummary) Total() int {
	return s.Processed + s.Skipped + s.Failed
}

// HasFailures reports whether any file failed normalization.
func (s RunSummary) HasFailures() bool {
	return s.Failed > 0
}
