package cli

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"gitlab.com/foundationdata/widgetboard/pkg/board"
	"gitlab.com/foundationdata/widgetboard/pkg/data"
	"gitlab.com/foundationdata/widgetboard/pkg/geometry"
	"gitlab.com/foundationdata/widgetboard/pkg/registry"
	"gitlab.com/foundationdata/widgetboard/pkg/scenario"
	"gitlab.com/foundationdata/widgetboard/pkg/terminal"
	"gitlab.com/foundationdata/widgetboard/pkg/theme"
	"gitlab.com/foundationdata/widgetboard/pkg/tui"
	"gitlab.com/foundationdata/widgetboard/pkg/widgets"
)

// defaultRenderWidth is used when stdout is not a terminal.
const defaultRenderWidth = 100

// replaySeedTime pins the demo data so renders are reproducible.
var replaySeedTime = time.Date(2025, 1, 6, 12, 0, 0, 0, time.UTC)

func (c *CLI) replayCommand() *cobra.Command {
	var (
		format string
		render bool
		width  int
		golden string
		update bool
	)
	cmd := &cobra.Command{
		Use:   "replay <file>",
		Short: "Replay a scripted board session and report the snapping",
		Long: `Replay reads a YAML scenario, applies each step through the same drag
and resize logic the interactive board uses, and prints what every step did.`,
		Example: `  widgetboard replay session.yaml
  widgetboard replay session.yaml --format yaml
  widgetboard replay session.yaml --render
  widgetboard replay session.yaml --golden session.board`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "text" && format != "yaml" {
				return fmt.Errorf("unknown format %q (want text or yaml)", format)
			}
			logger := loggerFromContext(cmd.Context())

			s, err := scenario.LoadFile(args[0])
			if err != nil {
				return err
			}
			reg, err := registry.Builtin()
			if err != nil {
				return err
			}
			b := s.NewBoard(reg, board.WithLogger(logger))

			rep, err := s.Run(cmd.Context(), b)
			if err != nil {
				return err
			}
			logger.Debug("scenario replayed", "file", args[0], "steps", len(rep.Steps))

			out := cmd.OutOrStdout()
			if format == "yaml" {
				err = rep.WriteYAML(out)
			} else {
				err = rep.WriteText(out)
			}
			if err != nil || (!render && golden == "") {
				return err
			}
			if width <= 0 {
				width = outputWidth()
			}
			th := theme.Get(terminal.Detect(os.Stdout).ThemeName(theme.DefaultName))
			rows := boardRows(b, width, geometry.DefaultScale(), th)
			if render {
				if _, err := io.WriteString(out, strings.Join(rows, "\n")+"\n"); err != nil {
					return err
				}
			}
			if golden == "" {
				return nil
			}
			if update {
				return os.WriteFile(golden, []byte(strings.Join(tui.PlainRows(rows), "\n")+"\n"), 0o644)
			}
			return checkGolden(golden, rows)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "report format: text or yaml")
	cmd.Flags().BoolVarP(&render, "render", "r", false, "draw the final board after the report")
	cmd.Flags().IntVar(&width, "width", 0, "render width in columns (default: terminal width)")
	cmd.Flags().StringVar(&golden, "golden", "", "compare the final board with this file")
	cmd.Flags().BoolVar(&update, "update", false, "rewrite the --golden file instead of comparing")
	return cmd
}

func outputWidth() int {
	fd := os.Stdout.Fd()
	if !term.IsTerminal(fd) {
		return defaultRenderWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return defaultRenderWidth
	}
	return w
}

// boardRows draws b with demo data, tall enough for the lowest widget.
func boardRows(b *board.Board, width int, scale geometry.Scale, th theme.Theme) []string {
	store := data.NewStore(data.StoreConfig{})
	data.SeedAnalytics(store, replaySeedTime, rand.New(rand.NewSource(1)))
	view := widgets.ViewState{Range: data.Range24h, Theme: th}

	reg := b.Registry()
	height := 1
	var (
		frames []tui.Frame
		tasks  []widgets.Task
	)
	for _, in := range b.Stacked() {
		def, _ := reg.Lookup(in.Kind)
		f := tui.Frame{ID: in.ID, Cell: scale.ToCells(in.Rect()), Title: def.Title}
		iw, ih := f.Inner()
		tasks = append(tasks, widgets.Task{Def: def, Width: iw, Height: ih})
		frames = append(frames, f)
		height = max(height, f.Cell.Y+f.Cell.H)
	}
	for i, c := range widgets.RenderBatch(tasks, store, view, 0) {
		frames[i].Content = c
	}
	return tui.RenderBoard(width, height, frames, nil, scale, th)
}

// maxShownDiffs caps the rows quoted in a golden mismatch.
const maxShownDiffs = 5

func checkGolden(path string, rows []string) error {
	want, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("golden: %w", err)
	}
	diffs := tui.DiffRows(string(want), rows)
	if len(diffs) == 0 {
		return nil
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "board differs from %s in %d row(s)", path, len(diffs))
	for _, d := range diffs[:min(len(diffs), maxShownDiffs)] {
		fmt.Fprintf(&sb, "\n  row %d\n    want %q\n    got  %q", d.Line, d.Want, d.Got)
	}
	return errors.New(sb.String())
}
