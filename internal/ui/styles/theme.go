// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App lipgloss.Style

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header      lipgloss.Style
	HeaderTitle lipgloss.Style

	// ==========================================================================
	// INPUT STYLES
	// ==========================================================================

	Label          lipgloss.Style
	PathInput      lipgloss.Style
	PathInputFocus lipgloss.Style
	Editor         lipgloss.Style
	EditorFocus    lipgloss.Style
	Placeholder    lipgloss.Style
	StepperLabel   lipgloss.Style
	StepperValue   lipgloss.Style
	StepperFocus   lipgloss.Style
	ActionButton   lipgloss.Style
	ActionShortcut lipgloss.Style

	// ==========================================================================
	// DIALOG STYLES
	// ==========================================================================

	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style
	DialogHint  lipgloss.Style

	// ==========================================================================
	// STATUS STYLES
	// ==========================================================================

	StatusInfo    lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusError   lipgloss.Style
}

// NewTheme creates a new theme with all styles configured.
func NewTheme() *Theme {
	colorProfile := termenv.ColorProfile()

	t := &Theme{
		IsDark:       termenv.HasDarkBackground(),
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	t.App = lipgloss.NewStyle().Padding(1, 1)

	// Header
	t.Header = lipgloss.NewStyle().
		Background(SurfaceDim).
		Padding(0, 1)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple)

	// Inputs
	t.Label = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.PathInput = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.PathInputFocus = t.PathInput.
		BorderForeground(Purple)

	// Rounded border tinted with the selection color.
	t.Editor = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(SelectionBg)

	t.EditorFocus = t.Editor.
		BorderForeground(Purple)

	t.Placeholder = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.StepperLabel = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.StepperValue = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Padding(0, 1)

	t.StepperFocus = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan).
		Padding(0, 1)

	t.ActionButton = lipgloss.NewStyle().
		Foreground(TextPrimary).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.ActionShortcut = lipgloss.NewStyle().
		Foreground(Cyan)

	// Dialog
	t.Dialog = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Purple).
		Padding(0, 1)

	t.DialogTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple)

	t.DialogHint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	// Status
	t.StatusInfo = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.StatusSuccess = lipgloss.NewStyle().
		Foreground(Emerald)

	t.StatusError = lipgloss.NewStyle().
		Bold(true).
		Foreground(Rose)
}
