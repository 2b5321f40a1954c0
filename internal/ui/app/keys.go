// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"github.com/charmbracelet/bubbles/key"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines the application-wide bindings. They are checked before the
// focused widget sees the key, so none of them may collide with editing
// keys of the textarea or textinput.
type KeyMap struct {
	Repeat     key.Binding
	Append     key.Binding
	SelectFile key.Binding
	Copy       key.Binding
	SubmitPath key.Binding
	NextFocus  key.Binding
	PrevFocus  key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Repeat: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("C-r", "repeat text"),
		),
		Append: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "append text to file"),
		),
		SelectFile: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("C-o", "select file"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("C-y", "copy text"),
		),
		SubmitPath: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "use path"),
		),
		NextFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "next field"),
		),
		PrevFocus: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-Tab", "previous field"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q", "ctrl+c"),
			key.WithHelp("C-q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the one-line help.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Repeat, k.Append, k.SelectFile, k.NextFocus, k.Help, k.Quit}
}

// FullHelp returns the bindings shown in the expanded help, grouped.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Actions
		{k.Repeat, k.Append, k.Copy},
		// File
		{k.SelectFile, k.SubmitPath},
		// Focus
		{k.NextFocus, k.PrevFocus},
		// App
		{k.Help, k.Quit},
	}
}
