package cli

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"

	"gitlab.com/foundationdata/widgetboard/pkg/app"
	"gitlab.com/foundationdata/widgetboard/pkg/board"
	"gitlab.com/foundationdata/widgetboard/pkg/config"
	"gitlab.com/foundationdata/widgetboard/pkg/data"
	"gitlab.com/foundationdata/widgetboard/pkg/feeds"
	"gitlab.com/foundationdata/widgetboard/pkg/geometry"
	"gitlab.com/foundationdata/widgetboard/pkg/registry"
	"gitlab.com/foundationdata/widgetboard/pkg/terminal"
	"gitlab.com/foundationdata/widgetboard/pkg/theme"
)

// runBoard starts the interactive board.
func (c *CLI) runBoard(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg, err := c.loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level, err := parseLevel(cfg.Log.Level, c.verbose)
	if err != nil {
		return err
	}
	logFile, err := openLogFile(cfg.Log.File)
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger := newSlog(logFile, level)

	caps := terminal.Detect(os.Stdout)
	th, err := resolveTheme(cfg.Theme, caps)
	if err != nil {
		return err
	}

	reg, err := buildRegistry(cfg)
	if err != nil {
		return err
	}
	scale := boardScale(cfg.Board)
	b := newBoard(reg, cfg.Board, logger)

	store := data.NewStore(data.StoreConfig{})
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	data.SeedAnalytics(store, time.Now(), rng)

	fr, err := buildFeeds(cfg.Feeds, store, rng)
	if err != nil {
		return err
	}
	updates := make(chan feeds.Update, feeds.DefaultUpdateBufferSize)
	runner := feeds.NewRunner(fr, updates, feeds.WithRunnerLogger(logger))
	if err := runner.Start(ctx); err != nil {
		return err
	}
	defer runner.Stop()

	zones := zone.New()
	model := app.New(app.Config{
		Board:     b,
		Store:     store,
		Theme:     th,
		Scale:     scale,
		Bounded:   cfg.Board.Bounded,
		Collapsed: cfg.Sidebar.Collapsed,
		Updates:   updates,
		Logger:    logger,
		Zones:     zones,
		Feeds:     runner,
	})

	logger.Info("board starting", "theme", th.Name, "preset", cfg.Board.Preset, "feeds", fr.List(),
		"cell_w", scale.CellW, "cell_h", scale.CellH, "tty", caps.TTY, "mux", caps.Mux)

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("run board: %w", err)
	}
	return nil
}

// resolveTheme picks the configured theme, layers the theme file over it
// and falls back to mono on terminals without colour.
func resolveTheme(cfg config.ThemeConfig, caps terminal.Caps) (theme.Theme, error) {
	name := caps.ThemeName(cfg.Name)
	if cfg.File == "" || name != cfg.Name {
		return theme.Get(name), nil
	}
	th, err := theme.LoadFile(cfg.File, name)
	if err != nil {
		return theme.Theme{}, err
	}
	theme.Register(th)
	return th, nil
}

// buildRegistry is the built-in catalog plus the host graph when its feed
// runs, plus any [[widgets]] from the config.
func buildRegistry(cfg *config.Config) (*registry.Registry, error) {
	var extra []registry.Definition
	if cfg.Feeds.HostEnabled {
		extra = append(extra, registry.HostLoadDefinition())
	}
	extra = append(extra, cfg.Widgets...)
	reg, err := registry.Builtin(extra...)
	if err != nil {
		return nil, fmt.Errorf("widget catalog: %w", err)
	}
	return reg, nil
}

func boardScale(cfg config.BoardConfig) geometry.Scale {
	if cfg.AutoCellSize {
		return terminal.GetSize().Scale()
	}
	return geometry.Scale{CellW: cfg.CellWidth, CellH: cfg.CellHeight}
}

// newBoard builds the board and places the preset widgets. A preset naming
// a kind the catalog lacks is logged and skipped.
func newBoard(reg *registry.Registry, cfg config.BoardConfig, logger *slog.Logger) *board.Board {
	b := board.New(reg,
		board.WithLogger(logger),
		board.WithSnapDistance(cfg.SnapDistance),
		board.WithZSeed(cfg.ZSeed),
		board.WithMinSize(cfg.MinWidth, cfg.MinHeight),
	)
	for _, kind := range config.PresetKinds(cfg.Preset) {
		if _, err := b.AddByKind(kind); err != nil {
			logger.Warn("preset widget skipped", "kind", kind, "error", err)
		}
	}
	return b
}

func buildFeeds(cfg config.FeedsConfig, store *data.Store, rng *rand.Rand) (*feeds.Registry, error) {
	fr := feeds.NewRegistry()
	if err := fr.Register(feeds.NewAnalyticsFeed(store, cfg.AnalyticsInterval.Duration, rng)); err != nil {
		return nil, err
	}
	if cfg.HostEnabled {
		if err := fr.Register(feeds.NewHostFeed(store, cfg.HostInterval.Duration)); err != nil {
			return nil, err
		}
	}
	return fr, nil
}
