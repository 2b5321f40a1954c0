// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package sink

import (
	"errors"
	"fmt"
)

// Describe turns the result of an Append into the status line shown to the
// user. failed is true for every error outcome.
func Describe(path string, n int, err error) (status string, failed bool) {
	switch {
	case err == nil:
		return fmt.Sprintf("appended %d bytes to file: %s", n, path), false
	case errors.Is(err, ErrNotExist):
		return fmt.Sprintf("file doesn't exist: %s", path), true
	case errors.Is(err, ErrOpen):
		return fmt.Sprintf("error occurred while opening stream: %s", path), true
	case errors.Is(err, ErrWrite):
		return fmt.Sprintf("error occurred while appending to: %s", path), true
	default:
		return fmt.Sprintf("couldn't append to %s: %v", path, err), true
	}
}
