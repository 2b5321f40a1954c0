// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/jeranaias/macro-tui/internal/ui/styles"
	"github.com/jeranaias/macro-tui/internal/util"
)

// =============================================================================
// HEADER COMPONENT - Title bar
// =============================================================================

// Header is the title bar.
type Header struct {
	Title string
	Width int
	theme *styles.Theme
}

// NewHeader creates a new Header component with default values
func NewHeader(theme *styles.Theme, title string) *Header {
	return &Header{
		Title: title,
		Width: 80,
		theme: theme,
	}
}

// SetWidth updates the header width
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// View renders the header across the full width.
func (h *Header) View() string {
	frame := h.theme.Header.GetHorizontalFrameSize()
	title := h.theme.HeaderTitle.Render(util.TruncateWidth(h.Title, h.Width-frame))
	return h.theme.Header.Width(h.Width).Render(title)
}
