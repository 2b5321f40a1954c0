// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/macro-tui/internal/ui/styles"
)

// drain runs cmd and every command batched inside it, returning the
// messages in order.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func findResult(msgs []tea.Msg) (FileDialogResultMsg, bool) {
	for _, msg := range msgs {
		if res, ok := msg.(FileDialogResultMsg); ok {
			return res, true
		}
	}
	return FileDialogResultMsg{}, false
}

// openInDir opens a dialog on dir and feeds it the directory listing.
func openInDir(t *testing.T, dir string) *FileDialog {
	t.Helper()

	d := NewFileDialog(styles.NewTheme(), FileDialogOptions{StartDir: dir, Height: 8})
	cmd := d.Open()
	require.NotNil(t, cmd)
	require.True(t, d.IsOpen())

	for _, msg := range drain(cmd) {
		d.Update(msg)
	}
	return d
}

func TestDialogOutcome_String(t *testing.T) {
	assert.Equal(t, "chosen", PathChosen.String())
	assert.Equal(t, "dismissed", Dismissed.String())
	assert.Equal(t, "unknown", DialogOutcome(7).String())
}

func TestFileDialog_ClosedByDefault(t *testing.T) {
	d := NewFileDialog(styles.NewTheme(), FileDialogOptions{})

	assert.False(t, d.IsOpen())
	assert.Equal(t, "", d.View())
	assert.Nil(t, d.Update(tea.KeyMsg{Type: tea.KeyEnter}))
}

func TestFileDialog_EscDismisses(t *testing.T) {
	d := openInDir(t, t.TempDir())

	cmd := d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	res, ok := findResult(drain(cmd))

	require.True(t, ok)
	assert.Equal(t, Dismissed, res.Outcome)
	assert.Empty(t, res.Path)
	assert.False(t, d.IsOpen())
}

func TestFileDialog_EnterChoosesFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target.txt")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o644))

	d := openInDir(t, dir)
	assert.Contains(t, d.View(), "target.txt")

	cmd := d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	res, ok := findResult(drain(cmd))

	require.True(t, ok)
	assert.Equal(t, PathChosen, res.Outcome)
	assert.Equal(t, target, res.Path)
	assert.False(t, d.IsOpen())
}

func TestFileDialog_ReopenStartsFresh(t *testing.T) {
	d := openInDir(t, t.TempDir())
	d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, d.IsOpen())

	d.Open()
	assert.True(t, d.IsOpen())
}
