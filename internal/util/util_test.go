// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"testing"
)

// =============================================================================
// TRUNCATION TESTS
// =============================================================================

func TestTruncateWidth(t *testing.T) {
	tests := []struct {
		input    string
		maxWidth int
		want     string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 8, "hello..."},
		{"hello", 3, "hel"},
		{"hello", 0, ""},
		{"日本語テキスト", 7, "日本..."},
	}

	for _, tt := range tests {
		got := TruncateWidth(tt.input, tt.maxWidth)
		if got != tt.want {
			t.Errorf("TruncateWidth(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
		}
		if StringWidth(got) > tt.maxWidth {
			t.Errorf("TruncateWidth(%q, %d) width %d exceeds limit", tt.input, tt.maxWidth, StringWidth(got))
		}
	}
}

func TestTruncateLeft(t *testing.T) {
	tests := []struct {
		input    string
		maxWidth int
		want     string
	}{
		{"/tmp/a.txt", 20, "/tmp/a.txt"},
		{"/home/user/docs/notes.txt", 12, "...notes.txt"},
		{"/abc", 2, "bc"},
		{"/abc", 0, ""},
		{"/文書/メモ.txt", 9, "...モ.txt"},
	}

	for _, tt := range tests {
		got := TruncateLeft(tt.input, tt.maxWidth)
		if got != tt.want {
			t.Errorf("TruncateLeft(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
		}
		if StringWidth(got) > tt.maxWidth {
			t.Errorf("TruncateLeft(%q, %d) width %d exceeds limit", tt.input, tt.maxWidth, StringWidth(got))
		}
	}
}

func TestFirstLine(t *testing.T) {
	if got := FirstLine("one\ntwo"); got != "one" {
		t.Errorf("FirstLine = %q, want one", got)
	}
	if got := FirstLine("single"); got != "single" {
		t.Errorf("FirstLine = %q, want single", got)
	}
}
