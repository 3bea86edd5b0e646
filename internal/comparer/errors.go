// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package comparer

import (
	"errors"
	"fmt"
)

// ErrNegativeOffset is returned by New when either offset is below zero.
var ErrNegativeOffset = errors.New("offset must be non-negative")

// FileAccessError reports an input that could not be opened for reading.
// Source is "A" or "B"; Path is the path as given by the caller.
type FileAccessError struct {
	Source string
	Path   string
	Err    error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("cannot read source %s (%s): %v", e.Source, e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}
