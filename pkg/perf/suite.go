package perf

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"gitlab.com/foundationdata/widgetboard/pkg/board"
	"gitlab.com/foundationdata/widgetboard/pkg/config"
	"gitlab.com/foundationdata/widgetboard/pkg/data"
	"gitlab.com/foundationdata/widgetboard/pkg/geometry"
	"gitlab.com/foundationdata/widgetboard/pkg/registry"
	"gitlab.com/foundationdata/widgetboard/pkg/snap"
	"gitlab.com/foundationdata/widgetboard/pkg/theme"
	"gitlab.com/foundationdata/widgetboard/pkg/tui"
	"gitlab.com/foundationdata/widgetboard/pkg/widgets"
)

// Bench is one named benchmark.
type Bench struct {
	Name string
	Fn   func(b *testing.B)
}

// Suite lists the hot-path benchmarks named in DefaultThresholds.
func Suite() []Bench {
	return []Bench{
		{"snap_12_neighbours", benchSnap},
		{"drag_move", benchDragMove},
		{"widget_batch", benchWidgetBatch},
		{"render_board", benchRenderBoard},
	}
}

// Run executes benches with testing.Benchmark and returns the results by
// name.
func Run(benches []Bench) map[string]testing.BenchmarkResult {
	out := make(map[string]testing.BenchmarkResult, len(benches))
	for _, bn := range benches {
		out[bn.Name] = testing.Benchmark(bn.Fn)
	}
	return out
}

// pfNeighbours lays out n widget rectangles in a loose grid.
func pfNeighbours(n int) []geometry.Rect {
	out := make([]geometry.Rect, n)
	for i := range out {
		out[i] = geometry.Rect{
			X:     float64(i%4) * 230,
			Y:     float64(i/4) * 180,
			Width: 200, Height: 150,
		}
	}
	return out
}

// pfFullBoard places every built-in widget, spread out so they overlap
// only partly.
func pfFullBoard(tb testing.TB) *board.Board {
	tb.Helper()
	reg, err := registry.Builtin()
	if err != nil {
		tb.Fatal(err)
	}
	n := 0
	b := board.New(reg, board.WithIDFunc(func(kind string) string {
		n++
		return fmt.Sprintf("%s-%d", kind, n)
	}))
	for i, kind := range config.PresetKinds(config.PresetFull) {
		in, err := b.AddByKind(kind)
		if err != nil {
			tb.Fatal(err)
		}
		b.Update(in.ID, board.Patch{
			X: board.Float(float64(i%4) * 240),
			Y: board.Float(float64(i/4) * 220),
		})
	}
	return b
}

// pfStore is the seeded analytics store at a fixed time.
func pfStore() *data.Store {
	s := data.NewStore(data.StoreConfig{})
	data.SeedAnalytics(s, time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC), rand.New(rand.NewSource(42)))
	return s
}

// pfFrames renders b the way the board view does.
func pfFrames(b *board.Board, store *data.Store, th theme.Theme, scale geometry.Scale) []tui.Frame {
	view := widgets.ViewState{Range: data.Range24h, Theme: th}
	stacked := b.Stacked()
	frames := make([]tui.Frame, len(stacked))
	tasks := make([]widgets.Task, len(stacked))
	for i, in := range stacked {
		def := b.Registry().MustLookup(in.Kind)
		frames[i] = tui.Frame{ID: in.ID, Cell: scale.ToCells(in.Rect()), Title: def.Title}
		w, h := frames[i].Inner()
		tasks[i] = widgets.Task{Def: def, Width: w, Height: h}
	}
	for i, c := range widgets.RenderBatch(tasks, store, view, 0) {
		frames[i].Content = c
	}
	return frames
}

func benchSnap(b *testing.B) {
	others := pfNeighbours(12)
	moving := geometry.Rect{Width: 200, Height: 150}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = snap.Compute(moving, 243+float64(i%7), 5, others, snap.DefaultDistance)
	}
}

func benchDragMove(b *testing.B) {
	bd := pfFullBoard(b)
	in, _ := bd.ByKind("Skills")
	it := board.NewInteraction(bd)
	if err := it.BeginDrag(in.ID, in.X, in.Y); err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = it.Move(in.X+float64(i%300), in.Y+float64(i%200))
	}
	b.StopTimer()
	it.End()
}

func benchWidgetBatch(b *testing.B) {
	bd := pfFullBoard(b)
	store := pfStore()
	th := theme.Get(theme.DefaultName)
	scale := geometry.DefaultScale()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pfFrames(bd, store, th, scale)
	}
}

func benchRenderBoard(b *testing.B) {
	bd := pfFullBoard(b)
	store := pfStore()
	th := theme.Get(theme.DefaultName)
	scale := geometry.DefaultScale()
	guides := []snap.Guide{{X: 238, Y: 0, Width: 4, Height: 150}}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tui.RenderBoard(160, 48, pfFrames(bd, store, th, scale), guides, scale, th)
	}
}
