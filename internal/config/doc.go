// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for macro.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, validation, and live reload.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - RepeatConfig: Bounds and default for the repeat stepper
//   - UIConfig: Labels, title, and help visibility
//   - PickerConfig: File dialog start directory and options
//   - LogConfig: Debug log file
//   - Watcher: Reloads the config file when it changes on disk
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (MACRO_*)
//   - ~/.macro/config.toml
//   - ~/.macro/config.json
//   - Built-in defaults
//
// # Usage
//
// Load configuration:
//
//	cfg, path, err := config.Load()
//	if err != nil {
//	    fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
//	}
//
// Watch for edits:
//
//	w, err := config.NewWatcher(path, 200*time.Millisecond)
//	for ev := range w.Events() {
//	    if ev.Err == nil {
//	        apply(ev.Config)
//	    }
//	}
package config
