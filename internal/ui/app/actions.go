// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"fmt"
	"log"

	"github.com/jeranaias/macro-tui/internal/sink"
	"github.com/jeranaias/macro-tui/internal/ui/components"
)

// =============================================================================
// USER ACTIONS
// =============================================================================

// repeat copies the editor text into the buffer, repeats it, and writes the
// result back. An empty editor is skipped without touching the buffer.
func (m *Model) repeat() {
	current := m.editor.Value()
	if len(current) == 0 {
		m.status.Set("skipping! Reason: empty text area", components.StatusInfo)
		return
	}

	times := m.stepper.Value()
	if times < 0 {
		times = 0
	}

	buf := m.state.Buffer
	buf.Set(current)
	buf.Repeat(uint(times))
	m.editor.SetValue(buf.String())

	m.status.Set(fmt.Sprintf("repeated %d times", times), components.StatusSuccess)
	log.Printf("repeat: times=%d bytes=%d", times, buf.Len())
}

// appendToFile appends the editor text to the current path.
func (m *Model) appendToFile() {
	path := m.state.Path
	n, err := m.appender.Append(path, []byte(m.editor.Value()))

	status, failed := sink.Describe(path, n, err)
	kind := components.StatusSuccess
	if failed {
		kind = components.StatusError
		log.Printf("append failed: %v", err)
	} else {
		log.Printf("append: %d bytes to %s", n, path)
	}
	m.status.Set(status, kind)
}

// selectTypedPath confirms the path typed into the path field.
func (m *Model) selectTypedPath() {
	m.state.Path = m.path.Value()
	if len(m.state.Path) == 0 {
		return
	}
	m.status.Set("file selected: "+m.state.Path, components.StatusInfo)
}

// copyEditor puts the editor text on the system clipboard.
func (m *Model) copyEditor() {
	content := m.editor.Value()
	if err := m.copyText(content); err != nil {
		m.status.Set("couldn't copy to clipboard: "+err.Error(), components.StatusError)
		return
	}
	m.status.Set(fmt.Sprintf("copied %d bytes to clipboard", len(content)), components.StatusSuccess)
}
