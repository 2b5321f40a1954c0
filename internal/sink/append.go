// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package sink appends editor text to files that already exist.
//
// Appending never creates a file. A missing target, a stream that cannot be
// opened, and a failed write are reported as distinct error types so the
// caller can turn them into a status line.
package sink

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Sentinels matched by errors.Is against the typed errors below.
var (
	ErrNotExist = errors.New("file does not exist")
	ErrOpen     = errors.New("cannot open file for append")
	ErrWrite    = errors.New("append failed")
)

// Appender adds bytes to the end of the file at path.
type Appender interface {
	Append(path string, data []byte) (int, error)
}

// =============================================================================
// ERRORS
// =============================================================================

// NotExistError reports an append target that is not on the filesystem.
type NotExistError struct {
	Path string
}

func (e *NotExistError) Error() string {
	return fmt.Sprintf("append %s: %v", e.Path, ErrNotExist)
}

func (e *NotExistError) Is(target error) bool { return target == ErrNotExist }

// OpenError reports a target that exists but cannot be opened for append.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("append %s: %v: %v", e.Path, ErrOpen, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

func (e *OpenError) Is(target error) bool { return target == ErrOpen }

// WriteError reports a write that failed or was short.
// Written is how many bytes reached the file before the failure.
type WriteError struct {
	Path    string
	Written int
	Err     error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("append %s: %v after %d bytes: %v", e.Path, ErrWrite, e.Written, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

func (e *WriteError) Is(target error) bool { return target == ErrWrite }

// =============================================================================
// FILE APPENDER
// =============================================================================

// FileAppender appends to files on the local filesystem.
type FileAppender struct{}

// NewFileAppender returns an Appender backed by the os package.
func NewFileAppender() *FileAppender {
	return &FileAppender{}
}

// Append writes data to the end of path. The file must already exist.
func (FileAppender) Append(path string, data []byte) (int, error) {
	if _, err := os.Stat(path); err != nil && errors.Is(err, os.ErrNotExist) {
		return 0, &NotExistError{Path: path}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return 0, &OpenError{Path: path, Err: err}
	}
	defer f.Close()

	return writeAll(f, path, data)
}

// writeAll writes data in one call. A short write without an error is
// reported as io.ErrShortWrite.
func writeAll(w io.Writer, path string, data []byte) (int, error) {
	n, err := w.Write(data)
	if err == nil && n < len(data) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return n, &WriteError{Path: path, Written: n, Err: err}
	}
	return n, nil
}
