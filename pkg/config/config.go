// Package config loads widgetboard settings from TOML.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gitlab.com/foundationdata/widgetboard/pkg/registry"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Config is the full configuration file.
type Config struct {
	Board   BoardConfig           `toml:"board"`
	Theme   ThemeConfig           `toml:"theme"`
	Log     LogConfig             `toml:"log"`
	Feeds   FeedsConfig           `toml:"feeds"`
	Sidebar SidebarConfig         `toml:"sidebar"`
	Widgets []registry.Definition `toml:"widgets"`
}

// BoardConfig controls snapping, stacking and the pixel-to-cell mapping.
type BoardConfig struct {
	SnapDistance float64 `toml:"snap_distance"`
	ZSeed        int     `toml:"z_seed"`
	CellWidth    float64 `toml:"cell_width"`
	CellHeight   float64 `toml:"cell_height"`
	AutoCellSize bool    `toml:"auto_cell_size"`
	MinWidth     float64 `toml:"min_width"`
	MinHeight    float64 `toml:"min_height"`
	// Bounded keeps widgets inside the visible canvas.
	Bounded bool   `toml:"bounded"`
	Preset  string `toml:"preset"`
}

// ThemeConfig selects a built-in theme or a theme file layered over it.
type ThemeConfig struct {
	Name string `toml:"name"`
	File string `toml:"file"`
}

// LogConfig controls the log handler.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// FeedsConfig controls the live data feeds.
type FeedsConfig struct {
	AnalyticsInterval Duration `toml:"analytics_interval"`
	HostEnabled       bool     `toml:"host_enabled"`
	HostInterval      Duration `toml:"host_interval"`
}

// SidebarConfig lists the sidebar groups that start collapsed.
type SidebarConfig struct {
	Collapsed []string `toml:"collapsed"`
}

var logLevels = []string{"debug", "info", "warn", "error"}

// Validate reports the first out-of-range setting.
func (c *Config) Validate() error {
	b := c.Board
	switch {
	case b.SnapDistance < 0:
		return fmt.Errorf("%w: board.snap_distance must be >= 0, got %v", ErrInvalid, b.SnapDistance)
	case b.CellWidth <= 0 || b.CellHeight <= 0:
		return fmt.Errorf("%w: board cell size must be positive, got %vx%v", ErrInvalid, b.CellWidth, b.CellHeight)
	case b.MinWidth <= 0 || b.MinHeight <= 0:
		return fmt.Errorf("%w: board minimum size must be positive, got %vx%v", ErrInvalid, b.MinWidth, b.MinHeight)
	}
	if _, ok := presets[b.Preset]; !ok {
		return fmt.Errorf("%w: unknown board.preset %q (want one of %s)", ErrInvalid, b.Preset, strings.Join(PresetNames(), ", "))
	}
	if !validLevel(c.Log.Level) {
		return fmt.Errorf("%w: log.level %q (want one of %s)", ErrInvalid, c.Log.Level, strings.Join(logLevels, ", "))
	}
	if c.Feeds.AnalyticsInterval.Duration != 0 && c.Feeds.AnalyticsInterval.Duration < 100*time.Millisecond {
		return fmt.Errorf("%w: feeds.analytics_interval below 100ms", ErrInvalid)
	}
	if c.Feeds.HostEnabled && c.Feeds.HostInterval.Duration < 100*time.Millisecond {
		return fmt.Errorf("%w: feeds.host_interval below 100ms", ErrInvalid)
	}
	return nil
}

func validLevel(s string) bool {
	for _, l := range logLevels {
		if strings.EqualFold(s, l) {
			return true
		}
	}
	return false
}
