// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package app implements the macro window as a Bubble Tea model.

The window has a path field with a Select File button, a multi-line editor,
a repeat-count stepper and two actions: Repeat Text and Append Text to File.
The outcome of every action is reported on a single status line.

# State

All mutable state lives in a State value owned by the Model. The text buffer
inside it is passed in by the caller, who destroys it after the program
exits:

	buf := text.New()
	defer buf.Destroy()

	m := app.New(app.Options{Config: cfg, Buffer: buf})
	p := tea.NewProgram(m, tea.WithAltScreen())

# Key Bindings

	Ctrl+R      Repeat the editor text
	Ctrl+S      Append the editor text to the selected file
	Ctrl+O      Open the file dialog
	Ctrl+Y      Copy the editor text to the clipboard
	Enter       Use the typed path (path field only)
	Tab         Next field
	Shift+Tab   Previous field
	F1          Toggle full help
	Ctrl+Q      Quit

# Config Reload

When Options.Reloads is set, the model listens for config.ReloadEvent values
and applies the new repeat bounds, title and picker options without a
restart. A failed reload keeps the running config and reports the error on
the status line.
*/
package app
