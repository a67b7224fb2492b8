// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"errors"
	"fmt"

	"github.com/pdiddy/imgnorm/pkg/types"
)

// DecodeError indicates the input could not be read as an image.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// EncodeError indicates the normalized image could not be encoded.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode: %v", e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

// FSError indicates a filesystem operation failed while reading the input,
// writing the output, or removing the original.
type FSError struct {
	Op   string
	Path string
	Err  error
}

func (e *FSError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FSError) Unwrap() error {
	return e.Err
}

// ErrorKind maps an error returned by this package to its kind label.
func ErrorKind(err error) types.ErrorKind {
	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		return types.ErrorDecode
	}
	var encodeErr *EncodeError
	if errors.As(err, &encodeErr) {
		return types.ErrorEncode
	}
	var fsErr *FSError
	if errors.As(err, &fsErr) {
		return types.ErrorFilesystem
	}
	return types.ErrorOther
}
