// Package config loads editor settings from a YAML file. The file is
// read-only input: the editor never writes it back.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the user-tunable editor settings.
type Config struct {
	Editor struct {
		TabWidth     int  `yaml:"tab_width"`     // Cells per tab stop
		HistoryLimit int  `yaml:"history_limit"` // Max undo depth per document
		FontSize     int  `yaml:"font_size"`     // Starting zoom level for new tabs
		LineNumbers  bool `yaml:"line_numbers"`  // Show the gutter by default
	} `yaml:"editor"`
	Theme struct {
		Background     string `yaml:"background"`
		Foreground     string `yaml:"foreground"`
		Selection      string `yaml:"selection"`
		Highlight      string `yaml:"highlight"`
		TabActive      string `yaml:"tab_active"`
		TabInactive    string `yaml:"tab_inactive"`
		StatusBar      string `yaml:"status_bar"`
		ScrollbarTrack string `yaml:"scrollbar_track"`
		ScrollbarThumb string `yaml:"scrollbar_thumb"`
	} `yaml:"theme"`
}

// Load reads the config from the default location
// (~/.config/scribe/config.yaml).
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return LoadFile(filepath.Join(home, ".config", "scribe", "config.yaml"))
}

// LoadFile reads configuration from a specific path. A missing file is
// not an error: defaults are returned.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var loaded Config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Merge over defaults so unset fields keep safe values.
	if loaded.Editor.TabWidth > 0 {
		cfg.Editor.TabWidth = loaded.Editor.TabWidth
	}
	if loaded.Editor.HistoryLimit > 0 {
		cfg.Editor.HistoryLimit = loaded.Editor.HistoryLimit
	}
	if loaded.Editor.FontSize > 0 {
		cfg.Editor.FontSize = loaded.Editor.FontSize
	}
	cfg.Editor.LineNumbers = loaded.Editor.LineNumbers

	mergeColor(&cfg.Theme.Background, loaded.Theme.Background)
	mergeColor(&cfg.Theme.Foreground, loaded.Theme.Foreground)
	mergeColor(&cfg.Theme.Selection, loaded.Theme.Selection)
	mergeColor(&cfg.Theme.Highlight, loaded.Theme.Highlight)
	mergeColor(&cfg.Theme.TabActive, loaded.Theme.TabActive)
	mergeColor(&cfg.Theme.TabInactive, loaded.Theme.TabInactive)
	mergeColor(&cfg.Theme.StatusBar, loaded.Theme.StatusBar)
	mergeColor(&cfg.Theme.ScrollbarTrack, loaded.Theme.ScrollbarTrack)
	mergeColor(&cfg.Theme.ScrollbarThumb, loaded.Theme.ScrollbarThumb)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func mergeColor(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}

// Default returns the built-in settings, matching the dark palette the
// editor ships with.
func Default() *Config {
	cfg := &Config{}

	cfg.Editor.TabWidth = 4
	cfg.Editor.HistoryLimit = 1000
	cfg.Editor.FontSize = 11
	cfg.Editor.LineNumbers = false

	cfg.Theme.Background = "#1e1e1e"
	cfg.Theme.Foreground = "#d4d4d4"
	cfg.Theme.Selection = "#264f78"
	cfg.Theme.Highlight = "#515c6a"
	cfg.Theme.TabActive = "#1e1e1e"
	cfg.Theme.TabInactive = "#2d2d2d"
	cfg.Theme.StatusBar = "#007acc"
	cfg.Theme.ScrollbarTrack = "#1e1e1e"
	cfg.Theme.ScrollbarThumb = "#555555"

	return cfg
}

// Validate rejects settings the editor cannot run with.
func (c *Config) Validate() error {
	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > 16 {
		return fmt.Errorf("tab_width must be between 1 and 16, got %d", c.Editor.TabWidth)
	}
	if c.Editor.HistoryLimit < 1 {
		return fmt.Errorf("history_limit must be positive, got %d", c.Editor.HistoryLimit)
	}
	if c.Editor.FontSize < 6 {
		return fmt.Errorf("font_size must be at least 6, got %d", c.Editor.FontSize)
	}
	return nil
}
