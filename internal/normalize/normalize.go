// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize turns a single image file into a square, fixed-size
// JPEG. The steps (decode, RGB conversion, center crop, resize, encode,
// save, cleanup) are exposed separately so each can be exercised without
// touching the filesystem.
package normalize

import (
	"bytes"
	"os"
	"strings"
)

// Result is the outcome of normalizing one file.
type Result struct {
	// Input is the path that was read.
	Input string

	// Output is the path written, with the output extension.
	Output string

	// RemovedOriginal is true when Input was deleted after Output was saved.
	RemovedOriginal bool

	// Err is nil on success, otherwise a *DecodeError, *EncodeError or
	// *FSError.
	Err error
}

// OK reports whether the file was normalized.
func (r Result) OK() bool {
	return r.Err == nil
}

// Normalizer rewrites image files in place to Size×Size JPEGs.
type Normalizer struct {
	Size int
}

// New returns a Normalizer producing size×size images.
func New(size int) *Normalizer {
	return &Normalizer{Size: size}
}

// Render decodes data and returns the encoded normalized JPEG.
func (n *Normalizer) Render(data []byte) ([]byte, error) {
	img, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := Encode(&buf, Transform(img, n.Size)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// NormalizeFile normalizes the image at path. The result is written next
// to it under OutputPath(path); the original is removed afterwards when
// the two paths differ case-insensitively.
func (n *Normalizer) NormalizeFile(path string) Result {
	res := Result{Input: path, Output: OutputPath(path)}

	data, err := os.ReadFile(path)
	if err != nil {
		res.Err = &FSError{Op: "read", Path: path, Err: err}
		return res
	}

	out, err := n.Render(data)
	if err != nil {
		res.Err = err
		return res
	}

	if err := os.WriteFile(res.Output, out, 0o644); err != nil {
		res.Err = &FSError{Op: "write", Path: res.Output, Err: err}
		return res
	}

	removed, err := Cleanup(path, res.Output)
	res.RemovedOriginal = removed
	res.Err = err
	return res
}

// Cleanup removes input once output has been saved, unless both name the
// same file ignoring case. It reports whether input was removed.
func Cleanup(input, output string) (bool, error) {
	if strings.EqualFold(input, output) {
		return false, nil
	}
	if err := os.Remove(input); err != nil {
		return false, &FSError{Op: "remove", Path: input, Err: err}
	}
	return true, nil
}
