// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/jeranaias/macro-tui/internal/ui/styles"
)

func newTestStepper(value int) *Stepper {
	return NewStepper(styles.NewTheme(), value, 0, 999, 10)
}

func TestNewStepper_ClampsInitialValue(t *testing.T) {
	assert.Equal(t, 2, newTestStepper(2).Value())
	assert.Equal(t, 999, newTestStepper(5000).Value())
	assert.Equal(t, 0, newTestStepper(-3).Value())
}

func TestStepper_IncDecStayInBounds(t *testing.T) {
	s := newTestStepper(0)
	s.Dec()
	assert.Equal(t, 0, s.Value())

	s.Set(998)
	s.Inc()
	s.Inc()
	assert.Equal(t, 999, s.Value())
}

func TestStepper_Page(t *testing.T) {
	s := newTestStepper(2)
	s.PageUp()
	assert.Equal(t, 12, s.Value())
	s.PageDown()
	s.PageDown()
	assert.Equal(t, 0, s.Value())
}

func TestStepper_SetBounds(t *testing.T) {
	s := newTestStepper(50)

	s.SetBounds(0, 20, 5)
	assert.Equal(t, 20, s.Value(), "value re-clamped to new max")
	assert.Equal(t, 20, s.Max())

	s.SetBounds(10, 5, 0)
	assert.Equal(t, 10, s.Min())
	assert.Equal(t, 10, s.Max(), "inverted range collapses to min")
	assert.Equal(t, 10, s.Value())

	s.SetBounds(0, 100, 0)
	s.PageUp()
	assert.Equal(t, 11, s.Value(), "page below 1 acts as 1")
}

func TestStepper_UpdateRequiresFocus(t *testing.T) {
	s := newTestStepper(2)
	up := tea.KeyMsg{Type: tea.KeyUp}

	assert.False(t, s.Update(up))
	assert.Equal(t, 2, s.Value())

	s.Focus()
	assert.True(t, s.Update(up))
	assert.Equal(t, 3, s.Value())
}

func TestStepper_UpdateKeys(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want int
	}{
		{"up", tea.KeyMsg{Type: tea.KeyUp}, 6},
		{"plus", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("+")}, 6},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, 4},
		{"minus", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("-")}, 4},
		{"page up", tea.KeyMsg{Type: tea.KeyPgUp}, 15},
		{"page down", tea.KeyMsg{Type: tea.KeyPgDown}, 0},
		{"home", tea.KeyMsg{Type: tea.KeyHome}, 0},
		{"end", tea.KeyMsg{Type: tea.KeyEnd}, 999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStepper(5)
			s.Focus()
			s.Update(tt.msg)
			assert.Equal(t, tt.want, s.Value())
		})
	}
}

func TestStepper_IgnoresOtherKeys(t *testing.T) {
	s := newTestStepper(5)
	s.Focus()

	assert.False(t, s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}))
	assert.False(t, s.Update(tea.WindowSizeMsg{Width: 10}))
	assert.Equal(t, 5, s.Value())
}

func TestStepper_View(t *testing.T) {
	s := newTestStepper(42)
	view := s.View()

	assert.True(t, strings.Contains(view, "times"))
	assert.True(t, strings.Contains(view, "42"))
}
