// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/jeranaias/macro-tui/internal/ui/styles"
	"github.com/jeranaias/macro-tui/internal/util"
)

// =============================================================================
// STATUS BAR COMPONENT - One-line result of the last operation
// =============================================================================

// StatusKind classifies a status line for styling.
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusSuccess
	StatusError
)

// String returns the display string for the kind
func (k StatusKind) String() string {
	switch k {
	case StatusInfo:
		return "info"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Icon returns the ASCII indicator for the kind
func (k StatusKind) Icon() string {
	switch k {
	case StatusSuccess:
		return styles.StatusIndicators.Success
	case StatusError:
		return styles.StatusIndicators.Error
	default:
		return styles.StatusIndicators.Info
	}
}

// StatusBar shows the last status message.
type StatusBar struct {
	Width int

	message string
	kind    StatusKind
	theme   *styles.Theme
}

// NewStatusBar creates an empty status bar.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{
		Width: 80,
		theme: theme,
	}
}

// SetWidth updates the status bar width
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
}

// Set replaces the message.
func (s *StatusBar) Set(message string, kind StatusKind) {
	s.message = message
	s.kind = kind
}

// Text returns the raw message without styling.
func (s *StatusBar) Text() string { return s.message }

// Kind returns the kind of the current message.
func (s *StatusBar) Kind() StatusKind { return s.kind }

// View renders the status line, truncated to Width. Nothing is rendered
// before the first message.
func (s *StatusBar) View() string {
	if s.message == "" {
		return ""
	}

	style := s.theme.StatusInfo
	switch s.kind {
	case StatusSuccess:
		style = s.theme.StatusSuccess
	case StatusError:
		style = s.theme.StatusError
	}

	icon := s.kind.Icon() + " "
	line := util.TruncateWidth(util.FirstLine(s.message), s.Width-util.StringWidth(icon))
	return style.Render(icon + line)
}
