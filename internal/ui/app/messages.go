// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jeranaias/macro-tui/internal/config"
)

// ConfigReloadedMsg carries a config reload from the watcher. Err is set
// when the new file could not be loaded; the running config is kept.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}

// waitForReload blocks on the next watcher event. A closed channel ends
// the subscription.
func waitForReload(ch <-chan config.ReloadEvent) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return ConfigReloadedMsg{Config: ev.Config, Err: ev.Err}
	}
}
