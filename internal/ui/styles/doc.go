// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the macro TUI.

All colors use Lip Gloss AdaptiveColor so the same palette works on light
and dark terminals. NewTheme detects the terminal color profile with termenv
and builds every lipgloss.Style the components need.

# Status Styles

Status lines come in three kinds (info, success, error). Each kind is rendered
with a color plus an ASCII indicator from StatusIndicators, so the state is
readable without color.

# Usage

	theme := styles.NewTheme()
	fmt.Println(theme.StatusError.Render("file doesn't exist: /tmp/x"))
*/
package styles
