// macro - repeat a block of text and append it to a file.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/macro-tui/internal/config"
	"github.com/jeranaias/macro-tui/internal/text"
	"github.com/jeranaias/macro-tui/internal/ui/app"
	"github.com/jeranaias/macro-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

// Quiet period before a changed config file is reloaded.
const reloadDebounce = 200 * time.Millisecond

func main() {
	os.Exit(run())
}

func run() int {
	// Load configuration at startup; a broken file falls back to defaults.
	cfg, cfgPath, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
	}

	closeLog := setupLogging(cfg)
	defer closeLog()
	log.Printf("macro %s (%s) starting, config=%q", Version, GitCommit, cfgPath)

	buf := text.New()
	defer buf.Destroy()

	opts := app.Options{
		Config: cfg,
		Theme:  styles.NewTheme(),
		Buffer: buf,
	}

	if w, err := startWatcher(cfgPath); err != nil {
		log.Printf("config watcher disabled: %v", err)
	} else {
		defer w.Close()
		opts.Reloads = w.Events()
	}

	p := tea.NewProgram(app.New(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running macro: %v\n", err)
		return 1
	}
	return 0
}

// startWatcher follows the loaded config file, or the default TOML location
// when running on defaults so a config written later is still applied.
func startWatcher(loaded string) (*config.Watcher, error) {
	path, err := config.WatchPath(loaded)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return config.NewWatcher(path, reloadDebounce)
}

// setupLogging sends the standard logger to the configured file, or
// discards it. The terminal belongs to the UI either way.
func setupLogging(cfg *config.Config) func() {
	if !cfg.Log.Enabled {
		log.SetOutput(io.Discard)
		return func() {}
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Log.Path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: log directory: %v\n", err)
		log.SetOutput(io.Discard)
		return func() {}
	}
	f, err := tea.LogToFile(cfg.Log.Path, "macro")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: log file: %v\n", err)
		log.SetOutput(io.Discard)
		return func() {}
	}
	return func() { f.Close() }
}
