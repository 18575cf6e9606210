package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"gitlab.com/foundationdata/widgetboard/pkg/geometry"
	"gitlab.com/foundationdata/widgetboard/pkg/snap"
	"gitlab.com/foundationdata/widgetboard/pkg/zorder"
)

const appName = "widgetboard"

// Load reads configuration from the standard config path.
// Search order:
//  1. $XDG_CONFIG_HOME/widgetboard/config.toml
//  2. ~/.config/widgetboard/config.toml
//
// If no file exists, returns DefaultConfig() with env overrides applied.
func Load() (*Config, error) {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return LoadFromFile(p)
		}
	}
	cfg := DefaultConfig()
	applyEnvOverrides(cfg)
	return cfg, cfg.Validate()
}

// LoadFromFile reads configuration from a specific file path. A missing file
// yields the defaults.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			applyEnvOverrides(cfg)
			return cfg, cfg.Validate()
		}
		return nil, err
	}
	defer f.Close()
	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes TOML over the defaults, applies env overrides and
// validates the result.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return nil, err
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return nil, fmt.Errorf("%w: unknown key %q", ErrInvalid, undec[0].String())
	}
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		Board: BoardConfig{
			SnapDistance: snap.DefaultDistance,
			ZSeed:        zorder.DefaultSeed,
			CellWidth:    geometry.DefaultCellW,
			CellHeight:   geometry.DefaultCellH,
			AutoCellSize: false,
			MinWidth:     100,
			MinHeight:    60,
			Bounded:      true,
			Preset:       PresetEmpty,
		},
		Theme: ThemeConfig{Name: "dark"},
		Log: LogConfig{
			Level: "info",
			File:  filepath.Join(xdgStateHome(home), appName, appName+".log"),
		},
		Feeds: FeedsConfig{
			AnalyticsInterval: Duration{5 * time.Second},
			HostEnabled:       false,
			HostInterval:      Duration{2 * time.Second},
		},
		Sidebar: SidebarConfig{Collapsed: []string{"Charts"}},
	}
}

// applyEnvOverrides lets the environment win over the file.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("WIDGETBOARD_THEME"); v != "" {
		cfg.Theme.Name = v
	}
	if v := os.Getenv("WIDGETBOARD_SNAP"); v != "" {
		if d, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Board.SnapDistance = d
		}
	}
	if v := os.Getenv("WIDGETBOARD_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

// configSearchPaths returns the ordered list of config file paths to try.
func configSearchPaths() []string {
	home, _ := os.UserHomeDir()
	var paths []string

	xdg := xdgConfigHome(home)
	paths = append(paths, filepath.Join(xdg, appName, "config.toml"))

	// If XDG_CONFIG_HOME was explicitly set, also try the fallback default.
	defaultXDG := filepath.Join(home, ".config")
	if xdg != defaultXDG {
		paths = append(paths, filepath.Join(defaultXDG, appName, "config.toml"))
	}
	return paths
}

func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}

func xdgStateHome(home string) string {
	if v := os.Getenv("XDG_STATE_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".local", "state")
}
