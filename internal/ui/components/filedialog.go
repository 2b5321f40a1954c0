// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"path/filepath"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jeranaias/macro-tui/internal/ui/styles"
	"github.com/jeranaias/macro-tui/internal/util"
)

// Longest directory path shown above the listing; longer ones keep the tail.
const dialogPathWidth = 60

// =============================================================================
// FILE DIALOG COMPONENT - Modal file chooser
// =============================================================================

// DialogOutcome is how a file dialog ended.
type DialogOutcome int

const (
	PathChosen DialogOutcome = iota
	Dismissed
)

// String returns the display string for the outcome
func (o DialogOutcome) String() string {
	switch o {
	case PathChosen:
		return "chosen"
	case Dismissed:
		return "dismissed"
	default:
		return "unknown"
	}
}

// FileDialogResultMsg is delivered once per Open, after the user picks a
// file or dismisses the dialog. Path is empty when Outcome is Dismissed.
type FileDialogResultMsg struct {
	Outcome DialogOutcome
	Path    string
}

// FileDialogOptions configures each opening of the dialog.
type FileDialogOptions struct {
	Title      string
	StartDir   string
	ShowHidden bool
	Height     int
}

// FileDialog wraps a bubbles filepicker in a modal with a two-way outcome.
type FileDialog struct {
	Options FileDialogOptions
	Dismiss key.Binding

	picker filepicker.Model
	open   bool
	theme  *styles.Theme
}

// NewFileDialog creates a closed dialog.
func NewFileDialog(theme *styles.Theme, opts FileDialogOptions) *FileDialog {
	return &FileDialog{
		Options: opts,
		Dismiss: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("Esc", "cancel"),
		),
		theme: theme,
	}
}

// Open shows the dialog with a fresh picker and returns the command that
// reads the start directory.
func (d *FileDialog) Open() tea.Cmd {
	fp := filepicker.New()

	dir := d.Options.StartDir
	if dir == "" {
		dir = "."
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	fp.CurrentDirectory = dir
	fp.ShowHidden = d.Options.ShowHidden
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.AutoHeight = false
	fp.Height = d.Options.Height
	if fp.Height < 1 {
		fp.Height = 10
	}
	// Esc closes the dialog, so it cannot also mean "parent directory".
	fp.KeyMap.Back = key.NewBinding(
		key.WithKeys("h", "backspace", "left"),
		key.WithHelp("h", "back"),
	)

	d.picker = fp
	d.open = true
	return d.picker.Init()
}

// IsOpen reports whether the dialog is showing.
func (d *FileDialog) IsOpen() bool { return d.open }

// Update routes a message to the picker. When the dialog finishes it closes
// itself and the returned command yields a FileDialogResultMsg.
func (d *FileDialog) Update(msg tea.Msg) tea.Cmd {
	if !d.open {
		return nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, d.Dismiss) {
		d.open = false
		return resultCmd(FileDialogResultMsg{Outcome: Dismissed})
	}

	var cmd tea.Cmd
	d.picker, cmd = d.picker.Update(msg)

	if didSelect, path := d.picker.DidSelectFile(msg); didSelect {
		d.open = false
		return tea.Batch(cmd, resultCmd(FileDialogResultMsg{Outcome: PathChosen, Path: path}))
	}
	return cmd
}

// View renders the dialog, or "" when closed.
func (d *FileDialog) View() string {
	if !d.open {
		return ""
	}

	title := d.Options.Title
	if title == "" {
		title = "Select File"
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		d.theme.DialogTitle.Render(title),
		d.theme.Label.Render(util.TruncateLeft(d.picker.CurrentDirectory, dialogPathWidth)),
		"",
		d.picker.View(),
		"",
		d.theme.DialogHint.Render("enter select  ·  h/backspace up  ·  esc cancel"),
	)
	return d.theme.Dialog.Render(body)
}

func resultCmd(msg FileDialogResultMsg) tea.Cmd {
	return func() tea.Msg { return msg }
}
