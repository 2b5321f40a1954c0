// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"github.com/charmbracelet/lipgloss"
)

// Width of the "[ Select File ]" button next to the path field, including
// the gap before it.
const selectButtonWidth = 16

// View renders the whole window.
func (m Model) View() string {
	if m.dialog.IsOpen() {
		return lipgloss.Place(m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			m.dialog.View(),
		)
	}

	sections := []string{
		m.header.View(),
		m.renderPathRow(),
		m.theme.Label.Render(m.cfg.UI.EditorLabel),
		m.renderEditor(),
		m.renderActions(),
		m.status.View(),
	}
	if m.showHelp {
		sections = append(sections, m.help.View(m.keys))
	}

	return m.theme.App.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// renderPathRow renders the path field and its Select File button.
func (m Model) renderPathRow() string {
	style := m.theme.PathInput
	if m.focus == FocusPath {
		style = m.theme.PathInputFocus
	}
	field := style.Render(m.path.View())

	button := m.renderButton("Select File", m.keys.SelectFile.Help().Key)
	return lipgloss.JoinHorizontal(lipgloss.Center, field, " ", button)
}

func (m Model) renderEditor() string {
	style := m.theme.Editor
	if m.focus == FocusEditor {
		style = m.theme.EditorFocus
	}
	return style.Render(m.editor.View())
}

// renderActions renders the stepper and the two action buttons.
func (m Model) renderActions() string {
	return lipgloss.JoinHorizontal(lipgloss.Center,
		m.stepper.View(),
		"  ",
		m.renderButton("Repeat Text", m.keys.Repeat.Help().Key),
		" ",
		m.renderButton("Append Text to File", m.keys.Append.Help().Key),
	)
}

func (m Model) renderButton(label, shortcut string) string {
	return m.theme.ActionButton.Render(label + " " + m.theme.ActionShortcut.Render(shortcut))
}
