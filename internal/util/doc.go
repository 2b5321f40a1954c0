// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the macro TUI.
//
// # Key Functions
//
// String Utilities:
//   - TruncateWidth: Display-width truncation keeping the start
//   - TruncateLeft: Display-width truncation keeping the end (paths)
//   - StringWidth: Terminal column count, CJK aware
//   - FirstLine: Text up to the first newline
//
// # Usage
//
//	// Fit a long path into the status line
//	shown := util.TruncateLeft("/very/long/path/to/notes.txt", 20)
package util
