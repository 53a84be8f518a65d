// Package config loads plaindeck settings from TOML files.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

// Config is the complete set of plaindeck settings.
type Config struct {
	Keys    KeysConfig    `toml:"keys"`
	Display DisplayConfig `toml:"display"`
	Export  ExportConfig  `toml:"export"`
	Logging LoggingConfig `toml:"logging"`
}

// KeysConfig binds key names, as reported by the terminal, to actions.
type KeysConfig struct {
	Previous []string `toml:"previous"`
	Next     []string `toml:"next"`
	Quit     []string `toml:"quit"`
	Help     []string `toml:"help"`
}

// DisplayConfig controls the terminal viewer.
type DisplayConfig struct {
	// CellWidth converts terminal columns into layout units.
	CellWidth        float64 `toml:"cell_width"`
	ShowStatus       bool    `toml:"show_status"`
	ShowProgress     bool    `toml:"show_progress"`
	StatusForeground string  `toml:"status_foreground"`
	StatusBackground string  `toml:"status_background"`
	// Title replaces the document name in the status line.
	Title string `toml:"title"`
}

// ExportConfig controls PNG export.
type ExportConfig struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
	Output     string `toml:"output"`
}

// LoggingConfig controls the log file.
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Validate checks the configuration for values the viewer cannot use.
func (c *Config) Validate() error {
	if len(c.Keys.Previous) == 0 || len(c.Keys.Next) == 0 {
		return errors.New("keys: previous and next must each have at least one key")
	}
	for _, k := range c.Keys.Previous {
		if slices.Contains(c.Keys.Next, k) {
			return fmt.Errorf("keys: %q is bound to both previous and next", k)
		}
	}
	if len(c.Keys.Quit) == 0 {
		return errors.New("keys: quit must have at least one key")
	}
	for _, group := range []struct {
		name string
		keys []string
	}{{"quit", c.Keys.Quit}, {"help", c.Keys.Help}} {
		for _, k := range group.keys {
			if slices.Contains(c.Keys.Previous, k) || slices.Contains(c.Keys.Next, k) {
				return fmt.Errorf("keys: %q is bound to both %s and navigation", k, group.name)
			}
		}
	}
	for _, k := range c.Keys.Help {
		if slices.Contains(c.Keys.Quit, k) {
			return fmt.Errorf("keys: %q is bound to both help and quit", k)
		}
	}

	if c.Display.CellWidth <= 0 {
		return fmt.Errorf("display: cell_width must be positive, got %v", c.Display.CellWidth)
	}

	if c.Export.Width <= 0 || c.Export.Height <= 0 {
		return fmt.Errorf("export: invalid size %dx%d", c.Export.Width, c.Export.Height)
	}
	if _, err := ParseHexColor(c.Export.Background); err != nil {
		return fmt.Errorf("export: background: %w", err)
	}
	if _, err := ParseHexColor(c.Export.Foreground); err != nil {
		return fmt.Errorf("export: foreground: %w", err)
	}

	if _, err := c.Logging.SlogLevel(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}

// SlogLevel maps the configured level name to a slog.Level.
func (l LoggingConfig) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown level %q", l.Level)
	}
}
