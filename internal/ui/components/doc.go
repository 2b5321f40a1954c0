// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the UI components of the macro window.

Each component is built on Bubble Tea, Bubbles and Lip Gloss and takes its
styles from a shared *styles.Theme.

# Components

Header (header.go) - Title bar across the top of the window.
Stepper (stepper.go) - Bounded integer spinner for the repeat count.
StatusBar (statusbar.go) - One-line result of the last operation.
FileDialog (filedialog.go) - Modal file chooser around bubbles/filepicker.

# File Dialog Outcome

A FileDialog ends in exactly one FileDialogResultMsg per Open:

	switch msg := msg.(type) {
	case components.FileDialogResultMsg:
		if msg.Outcome == components.PathChosen {
			useFile(msg.Path)
		}
	}

Dismissed carries no path and callers are expected to leave their state
alone.
*/
package components
