// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and validation for macro.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.macro/config.toml
//   - ~/.macro/config.json
//   - Built-in defaults
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete macro configuration.
type Config struct {
	// Repeat stepper bounds
	Repeat RepeatConfig `toml:"repeat" json:"repeat"`

	// UI text and layout
	UI UIConfig `toml:"ui" json:"ui"`

	// File picker behaviour
	Picker PickerConfig `toml:"picker" json:"picker"`

	// Debug logging
	Log LogConfig `toml:"log" json:"log"`
}

// RepeatConfig bounds the "times" stepper.
type RepeatConfig struct {
	// Default is the stepper value at startup
	Default int `toml:"default" json:"default"`
	// Min and Max bound the stepper; values outside are clamped
	Min int `toml:"min" json:"min"`
	Max int `toml:"max" json:"max"`
	// PageStep is the increment used by PgUp/PgDn
	PageStep int `toml:"page_step" json:"page_step"`
}

// UIConfig contains display settings.
type UIConfig struct {
	Title           string `toml:"title" json:"title"`
	EditorLabel     string `toml:"editor_label" json:"editor_label"`
	PathPlaceholder string `toml:"path_placeholder" json:"path_placeholder"`
	ShowHelp        bool   `toml:"show_help" json:"show_help"`
}

// PickerConfig configures the file selection dialog.
type PickerConfig struct {
	// StartDir is where the dialog opens; "." means the working directory
	StartDir   string `toml:"start_dir" json:"start_dir"`
	ShowHidden bool   `toml:"show_hidden" json:"show_hidden"`
	Height     int    `toml:"height" json:"height"`
}

// LogConfig controls the debug log file. The TUI owns stdout, so logs only
// ever go to a file.
type LogConfig struct {
	Enabled bool   `toml:"enabled" json:"enabled"`
	Path    string `toml:"path" json:"path"`
}

// Default returns the built-in configuration.
func Default() *Config {
	logPath := "macro.log"
	if dir, err := ConfigDir(); err == nil {
		logPath = filepath.Join(dir, "macro.log")
	}

	return &Config{
		Repeat: RepeatConfig{
			Default:  2,
			Min:      0,
			Max:      999,
			PageStep: 10,
		},
		UI: UIConfig{
			Title:           "Macro",
			EditorLabel:     "Text to Input/Repeat:",
			PathPlaceholder: "Enter the file path here...",
			ShowHelp:        true,
		},
		Picker: PickerConfig{
			StartDir:   ".",
			ShowHidden: false,
			Height:     12,
		},
		Log: LogConfig{
			Enabled: false,
			Path:    logPath,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the macro configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".macro"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the first config file that exists.
// Tries TOML first, then JSON, and falls back to defaults.
// It also returns the path it loaded from ("" for defaults).
func Load() (*Config, string, error) {
	for _, pathFn := range []func() (string, error){ConfigPathTOML, ConfigPathJSON} {
		path, err := pathFn()
		if err != nil {
			continue
		}
		if _, statErr := os.Stat(path); statErr != nil {
			continue
		}
		cfg, err := LoadFromPath(path)
		if err != nil {
			fallback, _ := defaultsWithEnv()
			return fallback, path, err
		}
		return cfg, path, nil
	}

	cfg, err := defaultsWithEnv()
	if err != nil {
		return cfg, "", fmt.Errorf("invalid config: %w", err)
	}
	return cfg, "", nil
}

// defaultsWithEnv returns the defaults with MACRO_* overrides applied. If the
// overrides do not validate, the plain defaults are returned with the error.
func defaultsWithEnv() (*Config, error) {
	cfg := Default()
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// WatchPath returns the file a config watcher should follow: the file that
// was loaded, or the TOML location when the defaults are in use, so a
// config created later is still picked up.
func WatchPath(loaded string) (string, error) {
	if loaded != "" {
		return loaded, nil
	}
	return ConfigPathTOML()
}

// LoadFromPath loads configuration from a specific file path with full validation.
func LoadFromPath(path string) (*Config, error) {
	cfg := &Config{}

	if strings.HasSuffix(path, ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}

	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML decodes a TOML file into cfg and fills missing values.
func LoadTOML(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	fillDefaults(cfg, md.IsDefined)
	return nil
}

// LoadJSON decodes a JSON file into cfg and fills missing values.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}

	var raw map[string]map[string]json.RawMessage
	_ = json.Unmarshal(data, &raw)
	fillDefaults(cfg, func(key ...string) bool {
		if len(key) != 2 {
			return false
		}
		_, ok := raw[key[0]][key[1]]
		return ok
	})
	return nil
}

// fillDefaults fills in values the file left out. Zero is a legal repeat
// bound, so numeric fields are only filled when the key was absent.
func fillDefaults(cfg *Config, defined func(key ...string) bool) {
	defaults := Default()

	// Repeat
	if !defined("repeat", "default") {
		cfg.Repeat.Default = defaults.Repeat.Default
	}
	if !defined("repeat", "min") {
		cfg.Repeat.Min = defaults.Repeat.Min
	}
	if !defined("repeat", "max") {
		cfg.Repeat.Max = defaults.Repeat.Max
	}
	if cfg.Repeat.PageStep == 0 {
		cfg.Repeat.PageStep = defaults.Repeat.PageStep
	}

	// UI
	if cfg.UI.Title == "" {
		cfg.UI.Title = defaults.UI.Title
	}
	if cfg.UI.EditorLabel == "" {
		cfg.UI.EditorLabel = defaults.UI.EditorLabel
	}
	if cfg.UI.PathPlaceholder == "" {
		cfg.UI.PathPlaceholder = defaults.UI.PathPlaceholder
	}
	if !defined("ui", "show_help") {
		cfg.UI.ShowHelp = defaults.UI.ShowHelp
	}

	// Picker
	if cfg.Picker.StartDir == "" {
		cfg.Picker.StartDir = defaults.Picker.StartDir
	}
	if cfg.Picker.Height == 0 {
		cfg.Picker.Height = defaults.Picker.Height
	}

	// Log
	if cfg.Log.Path == "" {
		cfg.Log.Path = defaults.Log.Path
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if c.Repeat.Min < 0 {
		errs = append(errs, ValidationError{
			Field:   "repeat.min",
			Message: fmt.Sprintf("must be >= 0, got %d", c.Repeat.Min),
		})
	}
	if c.Repeat.Max < c.Repeat.Min {
		errs = append(errs, ValidationError{
			Field:   "repeat.max",
			Message: fmt.Sprintf("must be >= repeat.min (%d), got %d", c.Repeat.Min, c.Repeat.Max),
		})
	}
	if c.Repeat.Default < c.Repeat.Min || c.Repeat.Default > c.Repeat.Max {
		errs = append(errs, ValidationError{
			Field:   "repeat.default",
			Message: fmt.Sprintf("must be within [%d, %d], got %d", c.Repeat.Min, c.Repeat.Max, c.Repeat.Default),
		})
	}
	if c.Repeat.PageStep < 1 {
		errs = append(errs, ValidationError{
			Field:   "repeat.page_step",
			Message: fmt.Sprintf("must be >= 1, got %d", c.Repeat.PageStep),
		})
	}

	if strings.TrimSpace(c.UI.Title) == "" {
		errs = append(errs, ValidationError{
			Field:   "ui.title",
			Message: "must not be empty",
		})
	}

	if c.Picker.Height < 1 {
		errs = append(errs, ValidationError{
			Field:   "picker.height",
			Message: fmt.Sprintf("must be >= 1, got %d", c.Picker.Height),
		})
	}

	if c.Log.Enabled && c.Log.Path == "" {
		errs = append(errs, ValidationError{
			Field:   "log.path",
			Message: "required when log.enabled is true",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported variables:
//   - MACRO_REPEAT_DEFAULT: overrides repeat.default
//   - MACRO_REPEAT_MAX: overrides repeat.max
//   - MACRO_START_DIR: overrides picker.start_dir
//   - MACRO_LOG: "1"/"true" enables the debug log
//   - MACRO_LOG_PATH: overrides log.path
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("MACRO_REPEAT_DEFAULT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Repeat.Default = n
		}
	}

	if v := os.Getenv("MACRO_REPEAT_MAX"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Repeat.Max = n
		}
	}

	if dir := os.Getenv("MACRO_START_DIR"); dir != "" {
		c.Picker.StartDir = dir
	}

	if v := os.Getenv("MACRO_LOG"); v != "" {
		c.Log.Enabled = v == "1" || strings.ToLower(v) == "true"
	}

	if path := os.Getenv("MACRO_LOG_PATH"); path != "" {
		c.Log.Path = path
	}
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
