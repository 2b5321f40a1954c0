// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package sink

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// FILE APPENDER TESTS
// =============================================================================

func TestAppend_ExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("start:"), 0644))

	n, err := NewFileAppender().Append(path, []byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "start:hello", string(got))
}

func TestAppend_TwiceAccumulates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	a := NewFileAppender()
	_, err := a.Append(path, []byte("ab"))
	require.NoError(t, err)
	_, err = a.Append(path, []byte("cd"))
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "abcd", string(got))
}

func TestAppend_MissingFileIsNotCreated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	n, err := NewFileAppender().Append(path, []byte("hello"))
	assert.Equal(t, 0, n)
	assert.True(t, errors.Is(err, ErrNotExist))

	var nerr *NotExistError
	require.True(t, errors.As(err, &nerr))
	assert.Equal(t, path, nerr.Path)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "append must not create the file")
}

func TestAppend_EmptyPath(t *testing.T) {
	_, err := NewFileAppender().Append("", []byte("x"))
	assert.True(t, errors.Is(err, ErrNotExist))
}

func TestAppend_DirectoryIsOpenError(t *testing.T) {
	dir := t.TempDir()

	_, err := NewFileAppender().Append(dir, []byte("x"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOpen))
	assert.False(t, errors.Is(err, ErrNotExist))
}

func TestAppend_EmptyData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("keep"), 0644))

	n, err := NewFileAppender().Append(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestAppend_DeviceFullIsWriteError(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("/dev/full is Linux only")
	}
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("/dev/full not available")
	}

	n, err := NewFileAppender().Append("/dev/full", []byte("hello"))
	require.Error(t, err)
	assert.Equal(t, 0, n)
	assert.True(t, errors.Is(err, ErrWrite))
	assert.False(t, errors.Is(err, ErrOpen))

	var werr *WriteError
	require.True(t, errors.As(err, &werr))
	assert.Equal(t, "/dev/full", werr.Path)
	assert.Equal(t, 0, werr.Written)

	status, failed := Describe("/dev/full", n, err)
	assert.Equal(t, "error occurred while appending to: /dev/full", status)
	assert.True(t, failed)
}

// shortWriter accepts at most limit bytes per call and never errors.
type shortWriter struct{ limit int }

func (w shortWriter) Write(p []byte) (int, error) {
	if len(p) > w.limit {
		return w.limit, nil
	}
	return len(p), nil
}

func TestWriteAll_ShortWrite(t *testing.T) {
	n, err := writeAll(shortWriter{limit: 2}, "/tmp/x", []byte("hello"))

	assert.Equal(t, 2, n)
	assert.True(t, errors.Is(err, ErrWrite))
	assert.True(t, errors.Is(err, io.ErrShortWrite))

	var werr *WriteError
	require.True(t, errors.As(err, &werr))
	assert.Equal(t, 2, werr.Written)
}

func TestWriteAll_Complete(t *testing.T) {
	n, err := writeAll(shortWriter{limit: 10}, "/tmp/x", []byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

// =============================================================================
// DESCRIBE TESTS
// =============================================================================

func TestDescribe(t *testing.T) {
	tests := []struct {
		name       string
		n          int
		err        error
		wantStatus string
		wantFailed bool
	}{
		{
			name:       "success",
			n:          5,
			wantStatus: "appended 5 bytes to file: /tmp/x",
		},
		{
			name:       "missing",
			err:        &NotExistError{Path: "/tmp/x"},
			wantStatus: "file doesn't exist: /tmp/x",
			wantFailed: true,
		},
		{
			name:       "open",
			err:        &OpenError{Path: "/tmp/x", Err: os.ErrPermission},
			wantStatus: "error occurred while opening stream: /tmp/x",
			wantFailed: true,
		},
		{
			name:       "write",
			n:          2,
			err:        &WriteError{Path: "/tmp/x", Written: 2, Err: io.ErrShortWrite},
			wantStatus: "error occurred while appending to: /tmp/x",
			wantFailed: true,
		},
		{
			name:       "unknown",
			err:        errors.New("boom"),
			wantStatus: "couldn't append to /tmp/x: boom",
			wantFailed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, failed := Describe("/tmp/x", tt.n, tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantFailed, failed)
		})
	}
}

func TestWriteError_Unwrap(t *testing.T) {
	err := &WriteError{Path: "p", Written: 1, Err: io.ErrShortWrite}
	assert.True(t, errors.Is(err, io.ErrShortWrite))
	assert.True(t, errors.Is(err, ErrWrite))
	assert.Contains(t, err.Error(), "after 1 bytes")
}
