// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"log"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/macro-tui/internal/ui/components"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case components.FileDialogResultMsg:
		return m.handleDialogResult(msg)

	case ConfigReloadedMsg:
		return m.handleConfigReloaded(msg)
	}

	// While the dialog is up it owns all input.
	if m.dialog.IsOpen() {
		return m, m.dialog.Update(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(keyMsg)
	}

	return m.updateFocused(msg)
}

// handleKey runs the application-wide bindings first, then hands the key to
// the focused widget.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Repeat):
		m.repeat()
		return m, nil

	case key.Matches(msg, m.keys.Append):
		m.appendToFile()
		return m, nil

	case key.Matches(msg, m.keys.SelectFile):
		return m, m.dialog.Open()

	case key.Matches(msg, m.keys.Copy):
		m.copyEditor()
		return m, nil

	case key.Matches(msg, m.keys.NextFocus):
		return m, m.cycleFocus(1)

	case key.Matches(msg, m.keys.PrevFocus):
		return m, m.cycleFocus(-1)

	case key.Matches(msg, m.keys.Help):
		m.cycleHelp()
		return m, nil

	case m.focus == FocusPath && key.Matches(msg, m.keys.SubmitPath):
		m.selectTypedPath()
		return m, nil
	}

	return m.updateFocused(msg)
}

// updateFocused forwards a message to whichever widget has focus.
func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.focus {
	case FocusPath:
		m.path, cmd = m.path.Update(msg)
		m.state.Path = m.path.Value()
	case FocusEditor:
		m.editor, cmd = m.editor.Update(msg)
	case FocusStepper:
		m.stepper.Update(msg)
	}
	return m, cmd
}

// cycleHelp steps the help line through hidden, short and full.
func (m *Model) cycleHelp() {
	switch {
	case !m.showHelp:
		m.showHelp = true
		m.help.ShowAll = false
	case !m.help.ShowAll:
		m.help.ShowAll = true
	default:
		m.showHelp = false
		m.help.ShowAll = false
	}
}

// =============================================================================
// DIALOG AND CONFIG RESULTS
// =============================================================================

func (m Model) handleDialogResult(msg components.FileDialogResultMsg) (tea.Model, tea.Cmd) {
	if msg.Outcome == components.Dismissed {
		return m, nil
	}

	m.path.SetValue(msg.Path)
	m.path.CursorEnd()
	m.state.Path = msg.Path
	m.status.Set("file selected: "+msg.Path, components.StatusInfo)
	log.Printf("file selected via dialog: %s", msg.Path)
	return m, nil
}

func (m Model) handleConfigReloaded(msg ConfigReloadedMsg) (tea.Model, tea.Cmd) {
	next := waitForReload(m.reloads)

	if msg.Err != nil {
		m.status.Set("config reload failed: "+msg.Err.Error(), components.StatusError)
		log.Printf("config reload failed: %v", msg.Err)
		return m, next
	}
	if msg.Config == nil {
		return m, next
	}

	m.cfg = msg.Config.Clone()
	m.header.Title = m.cfg.UI.Title
	m.path.Placeholder = m.cfg.UI.PathPlaceholder
	m.stepper.SetBounds(m.cfg.Repeat.Min, m.cfg.Repeat.Max, m.cfg.Repeat.PageStep)
	m.dialog.Options = pickerOptions(m.cfg)
	m.showHelp = m.cfg.UI.ShowHelp
	log.Printf("config reloaded")
	return m, next
}
