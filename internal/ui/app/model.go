// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/macro-tui/internal/config"
	"github.com/jeranaias/macro-tui/internal/sink"
	"github.com/jeranaias/macro-tui/internal/text"
	"github.com/jeranaias/macro-tui/internal/ui/components"
	"github.com/jeranaias/macro-tui/internal/ui/styles"
)

// =============================================================================
// APPLICATION STATE
// =============================================================================

// Focus identifies the widget that receives plain key presses.
type Focus int

const (
	FocusPath Focus = iota
	FocusEditor
	FocusStepper
	focusCount
)

// String returns the display string for the focus
func (f Focus) String() string {
	switch f {
	case FocusPath:
		return "path"
	case FocusEditor:
		return "editor"
	case FocusStepper:
		return "times"
	default:
		return "unknown"
	}
}

// State is the mutable application state every handler works on. It is
// built once in New and only touched from the Update loop.
type State struct {
	// Path is the current append target, from the path field or the dialog.
	Path string

	// Buffer is the text model used by Repeat. The caller that passed it
	// in keeps ownership and destroys it after the program exits.
	Buffer *text.Buffer
}

// Options wires the model to its collaborators. Zero fields get defaults.
type Options struct {
	Config   *config.Config
	Theme    *styles.Theme
	Buffer   *text.Buffer
	Appender sink.Appender

	// Reloads delivers config changes; nil disables live reload.
	Reloads <-chan config.ReloadEvent

	// CopyToClipboard defaults to the system clipboard.
	CopyToClipboard func(string) error
}

// Model is the Bubble Tea model for the macro window.
type Model struct {
	state *State
	cfg   *config.Config
	theme *styles.Theme
	keys  KeyMap
	focus Focus

	// Widgets
	header   *components.Header
	path     textinput.Model
	editor   textarea.Model
	stepper  *components.Stepper
	dialog   *components.FileDialog
	status   *components.StatusBar
	help     help.Model
	showHelp bool

	// Collaborators
	appender sink.Appender
	copyText func(string) error
	reloads  <-chan config.ReloadEvent

	// Dimensions
	width  int
	height int
}

// New builds the model.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	theme := opts.Theme
	if theme == nil {
		theme = styles.NewTheme()
	}
	buf := opts.Buffer
	if buf == nil {
		buf = text.New()
	}
	appender := opts.Appender
	if appender == nil {
		appender = sink.NewFileAppender()
	}
	copyText := opts.CopyToClipboard
	if copyText == nil {
		copyText = clipboard.WriteAll
	}

	path := textinput.New()
	path.Prompt = ""
	path.Placeholder = cfg.UI.PathPlaceholder
	path.PlaceholderStyle = theme.Placeholder

	editor := textarea.New()
	editor.ShowLineNumbers = false
	editor.CharLimit = 0
	editor.MaxHeight = 0
	editor.Prompt = ""
	editor.Placeholder = ""

	m := Model{
		state:    &State{Buffer: buf},
		cfg:      cfg,
		theme:    theme,
		keys:     DefaultKeyMap(),
		header:   components.NewHeader(theme, cfg.UI.Title),
		path:     path,
		editor:   editor,
		stepper:  components.NewStepper(theme, cfg.Repeat.Default, cfg.Repeat.Min, cfg.Repeat.Max, cfg.Repeat.PageStep),
		dialog:   components.NewFileDialog(theme, pickerOptions(cfg)),
		status:   components.NewStatusBar(theme),
		help:     help.New(),
		showHelp: cfg.UI.ShowHelp,
		appender: appender,
		copyText: copyText,
		reloads:  opts.Reloads,
		width:    80,
		height:   24,
	}
	m.setFocus(FocusEditor)
	m.layout()
	return m
}

// Init starts cursor blinking and the config reload subscription.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, waitForReload(m.reloads))
}

// =============================================================================
// ACCESSORS
// =============================================================================

// State returns the shared application state.
func (m Model) State() *State { return m.state }

// Status returns the current status line text.
func (m Model) Status() string { return m.status.Text() }

// StatusKind returns the kind of the current status line.
func (m Model) StatusKind() components.StatusKind { return m.status.Kind() }

// EditorText returns the editor contents.
func (m Model) EditorText() string { return m.editor.Value() }

// SetEditorText replaces the editor contents.
func (m *Model) SetEditorText(s string) { m.editor.SetValue(s) }

// Times returns the stepper value.
func (m Model) Times() int { return m.stepper.Value() }

// SetTimes sets the stepper value, clamped to its bounds.
func (m *Model) SetTimes(n int) { m.stepper.Set(n) }

// Focused returns the focused widget.
func (m Model) Focused() Focus { return m.focus }

// DialogOpen reports whether the file dialog is showing.
func (m Model) DialogOpen() bool { return m.dialog.IsOpen() }

// =============================================================================
// FOCUS AND LAYOUT
// =============================================================================

func (m *Model) setFocus(f Focus) tea.Cmd {
	m.focus = f
	m.path.Blur()
	m.editor.Blur()
	m.stepper.Blur()

	switch f {
	case FocusPath:
		return m.path.Focus()
	case FocusEditor:
		return m.editor.Focus()
	case FocusStepper:
		m.stepper.Focus()
	}
	return nil
}

func (m *Model) cycleFocus(delta int) tea.Cmd {
	next := (int(m.focus) + delta + int(focusCount)) % int(focusCount)
	return m.setFocus(Focus(next))
}

// Rows used by everything except the editor body: app padding (2), header
// (1), path field with border (3), label (1), editor border (2), action bar
// (3), status (1), help (1).
const chromeRows = 14

func (m *Model) layout() {
	inner := m.width - m.theme.App.GetHorizontalFrameSize()
	if inner < 10 {
		inner = 10
	}

	m.header.SetWidth(inner)
	m.status.SetWidth(inner)
	m.help.Width = inner

	m.path.Width = inner - m.theme.PathInput.GetHorizontalFrameSize() - selectButtonWidth
	if m.path.Width < 1 {
		m.path.Width = 1
	}

	m.editor.SetWidth(inner - m.theme.Editor.GetHorizontalFrameSize())
	rows := m.height - chromeRows
	if rows < 3 {
		rows = 3
	}
	m.editor.SetHeight(rows)
}

func pickerOptions(cfg *config.Config) components.FileDialogOptions {
	return components.FileDialogOptions{
		Title:      "Select File",
		StartDir:   cfg.Picker.StartDir,
		ShowHidden: cfg.Picker.ShowHidden,
		Height:     cfg.Picker.Height,
	}
}
