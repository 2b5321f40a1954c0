// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/jeranaias/macro-tui/internal/ui/styles"
)

// =============================================================================
// HEADER TESTS
// =============================================================================

func TestNewHeader(t *testing.T) {
	h := NewHeader(styles.NewTheme(), "Macro")

	if h == nil {
		t.Fatal("NewHeader() returned nil")
	}
	if h.Title != "Macro" {
		t.Errorf("NewHeader() Title = %q, want %q", h.Title, "Macro")
	}
	if h.Width != 80 {
		t.Errorf("NewHeader() Width = %d, want 80", h.Width)
	}
}

func TestHeaderView(t *testing.T) {
	h := NewHeader(styles.NewTheme(), "Macro")
	h.SetWidth(40)

	view := h.View()
	if !strings.Contains(view, "Macro") {
		t.Errorf("View() should contain the title, got %q", view)
	}
	if w := lipgloss.Width(view); w != 40 {
		t.Errorf("View() width = %d, want 40", w)
	}
}

func TestHeaderView_LongTitleTruncated(t *testing.T) {
	h := NewHeader(styles.NewTheme(), strings.Repeat("macro ", 20))
	h.SetWidth(20)

	if w := lipgloss.Width(h.View()); w > 20 {
		t.Errorf("View() width = %d, want <= 20", w)
	}
}
