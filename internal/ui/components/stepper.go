// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jeranaias/macro-tui/internal/ui/styles"
)

// =============================================================================
// STEPPER COMPONENT - Bounded numeric spinner
// =============================================================================

// StepperKeyMap defines the keys a focused Stepper reacts to.
type StepperKeyMap struct {
	Inc      key.Binding
	Dec      key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	First    key.Binding
	Last     key.Binding
}

// DefaultStepperKeyMap returns the default stepper bindings.
func DefaultStepperKeyMap() StepperKeyMap {
	return StepperKeyMap{
		Inc: key.NewBinding(
			key.WithKeys("up", "k", "+", "="),
			key.WithHelp("up/+", "increase"),
		),
		Dec: key.NewBinding(
			key.WithKeys("down", "j", "-"),
			key.WithHelp("down/-", "decrease"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("PgUp", "+page"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("PgDn", "-page"),
		),
		First: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("Home", "minimum"),
		),
		Last: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("End", "maximum"),
		),
	}
}

// Stepper is an integer input clamped to [min, max].
type Stepper struct {
	Label string
	Keys  StepperKeyMap

	value   int
	min     int
	max     int
	page    int
	focused bool
	theme   *styles.Theme
}

// NewStepper creates a stepper. value is clamped into [min, max]; a page
// smaller than 1 is treated as 1.
func NewStepper(theme *styles.Theme, value, min, max, page int) *Stepper {
	s := &Stepper{
		Label: "times",
		Keys:  DefaultStepperKeyMap(),
		theme: theme,
	}
	s.SetBounds(min, max, page)
	s.Set(value)
	return s
}

// Value returns the current value.
func (s *Stepper) Value() int { return s.value }

// Min returns the lower bound.
func (s *Stepper) Min() int { return s.min }

// Max returns the upper bound.
func (s *Stepper) Max() int { return s.max }

// Set sets the value, clamped to the bounds.
func (s *Stepper) Set(v int) {
	s.value = clamp(v, s.min, s.max)
}

// SetBounds replaces the bounds and re-clamps the current value.
// If max < min the range collapses to min.
func (s *Stepper) SetBounds(min, max, page int) {
	if max < min {
		max = min
	}
	if page < 1 {
		page = 1
	}
	s.min, s.max, s.page = min, max, page
	s.value = clamp(s.value, min, max)
}

// Inc adds one.
func (s *Stepper) Inc() { s.Set(s.value + 1) }

// Dec subtracts one.
func (s *Stepper) Dec() { s.Set(s.value - 1) }

// PageUp adds one page.
func (s *Stepper) PageUp() { s.Set(s.value + s.page) }

// PageDown subtracts one page.
func (s *Stepper) PageDown() { s.Set(s.value - s.page) }

// Focus gives the stepper keyboard focus.
func (s *Stepper) Focus() { s.focused = true }

// Blur removes keyboard focus.
func (s *Stepper) Blur() { s.focused = false }

// Focused reports whether the stepper has focus.
func (s *Stepper) Focused() bool { return s.focused }

// Update applies a key press when focused and reports whether it was used.
func (s *Stepper) Update(msg tea.Msg) bool {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !s.focused {
		return false
	}

	switch {
	case key.Matches(keyMsg, s.Keys.Inc):
		s.Inc()
	case key.Matches(keyMsg, s.Keys.Dec):
		s.Dec()
	case key.Matches(keyMsg, s.Keys.PageUp):
		s.PageUp()
	case key.Matches(keyMsg, s.Keys.PageDown):
		s.PageDown()
	case key.Matches(keyMsg, s.Keys.First):
		s.Set(s.min)
	case key.Matches(keyMsg, s.Keys.Last):
		s.Set(s.max)
	default:
		return false
	}
	return true
}

// View renders "times [ 2 ]".
func (s *Stepper) View() string {
	valueStyle := s.theme.StepperValue
	if s.focused {
		valueStyle = s.theme.StepperFocus
	}
	value := valueStyle.Render(fmt.Sprintf("%d", s.value))

	return lipgloss.JoinHorizontal(lipgloss.Center,
		s.theme.StepperLabel.Render(s.Label+" "),
		"[", value, "]",
	)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
