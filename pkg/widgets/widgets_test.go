package widgets

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"

	"gitlab.com/foundationdata/widgetboard/pkg/data"
	"gitlab.com/foundationdata/widgetboard/pkg/registry"
	"gitlab.com/foundationdata/widgetboard/pkg/theme"
)

// --- helpers ---

func seededStore(t *testing.T) *data.Store {
	t.Helper()
	s := data.NewStore(data.StoreConfig{})
	data.SeedAnalytics(s, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), rand.New(rand.NewSource(7)))
	return s
}

func builtin(t *testing.T, key string) registry.Definition {
	t.Helper()
	reg, err := registry.Builtin()
	if err != nil {
		t.Fatal(err)
	}
	return reg.MustLookup(key)
}

func plain(rows []string) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = ansi.Strip(r)
	}
	return out
}

func mono() ViewState {
	return ViewState{Range: data.Range24h, Theme: theme.Get("mono")}
}

func assertBox(t *testing.T, rows []string, width, height int) {
	t.Helper()
	if len(rows) != height {
		t.Fatalf("got %d rows, want %d", len(rows), height)
	}
	for i, r := range rows {
		if w := ansi.StringWidth(r); w != width {
			t.Errorf("row %d width = %d, want %d: %q", i, w, width, ansi.Strip(r))
		}
	}
}

// --- tests ---

func TestRenderText(t *testing.T) {
	got := plain(RenderLines(builtin(t, "Skills"), nil, mono(), 12, 5))
	want := []string{
		"JavaScript  ",
		"React       ",
		"TypeScript  ",
		"Node.js     ",
		"            ",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("text mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderTextWrapsAndClips(t *testing.T) {
	def := registry.Definition{Key: "t", Kind: registry.KindText, Data: registry.DataRef{
		Lines: []string{"Monthly Hiring Trends"},
	}}
	got := plain(RenderLines(def, nil, mono(), 10, 2))
	if strings.TrimSpace(got[0]) != "Monthly" || strings.TrimSpace(got[1]) != "Hiring" {
		t.Errorf("wrapped rows = %q", got)
	}
}

func TestRenderFillsBoxForEveryBuiltin(t *testing.T) {
	store := seededStore(t)
	reg, err := registry.Builtin(registry.HostLoadDefinition())
	if err != nil {
		t.Fatal(err)
	}
	sizes := [][2]int{{1, 1}, {8, 2}, {18, 6}, {43, 18}}
	for _, key := range reg.Keys() {
		def := reg.MustLookup(key)
		for _, sz := range sizes {
			rows := RenderLines(def, store, ViewState{Theme: theme.Get("dark")}, sz[0], sz[1])
			assertBox(t, rows, sz[0], sz[1])
		}
	}
}

func TestRenderZeroSize(t *testing.T) {
	if got := Render(builtin(t, "Salary"), nil, mono(), 0, 4); got != "" {
		t.Errorf("Render zero width = %q", got)
	}
}

func TestRenderLineRange(t *testing.T) {
	store := seededStore(t)
	def := builtin(t, "lineGraph")

	view := mono()
	rows := plain(RenderLines(def, store, view, 40, 10))
	if !strings.HasPrefix(rows[0], "Last 24 Hours (Hourly)") {
		t.Errorf("header = %q", rows[0])
	}
	if strings.Join(rows[1:], "") == strings.Repeat(" ", 40*9) {
		t.Error("line chart drew nothing")
	}

	view.Range = data.Range7d
	rows = plain(RenderLines(def, store, view, 40, 10))
	if !strings.HasPrefix(rows[0], "Last 7 Days") {
		t.Errorf("7d header = %q", rows[0])
	}
}

func TestRenderLineHeaderShowsLatest(t *testing.T) {
	store := data.NewStore(data.StoreConfig{})
	now := time.Now()
	store.AddPoint("host.cpu", now.Add(-time.Second), 10)
	store.AddPoint("host.cpu", now, 42)

	rows := plain(RenderLines(registry.HostLoadDefinition(), store, mono(), 30, 4))
	if !strings.HasPrefix(rows[0], "host.cpu") || !strings.HasSuffix(rows[0], " 42") {
		t.Errorf("header = %q", rows[0])
	}
}

func TestRenderChartsWithoutData(t *testing.T) {
	empty := data.NewStore(data.StoreConfig{})
	for _, key := range []string{"lineGraph", "pieChart", "barChart"} {
		for _, store := range []*data.Store{nil, empty} {
			got := Render(builtin(t, key), store, mono(), 30, 6)
			if !strings.Contains(ansi.Strip(got), NoData) {
				t.Errorf("%s: missing %q placeholder:\n%s", key, NoData, ansi.Strip(got))
			}
		}
	}
}

func TestRenderPieLegend(t *testing.T) {
	rows := plain(RenderLines(builtin(t, "pieChart"), seededStore(t), mono(), 40, 8))
	want := map[string]string{"Frontend": "40%", "Backend": "25%", "AI/ML": "20%", "UI/UX": "15%"}
	for i, name := range []string{"Frontend", "Backend", "AI/ML", "UI/UX"} {
		if !strings.Contains(rows[i], name) || !strings.HasSuffix(rows[i], want[name]) {
			t.Errorf("legend row %d = %q, want %s ... %s", i, rows[i], name, want[name])
		}
	}
	if strings.HasPrefix(rows[3], "■") {
		t.Errorf("disc missing to the left of the legend: %q", rows[3])
	}
}

func TestRenderPieNarrowDropsDisc(t *testing.T) {
	rows := plain(RenderLines(builtin(t, "pieChart"), seededStore(t), mono(), 20, 8))
	if !strings.HasPrefix(rows[0], "■ Frontend") {
		t.Errorf("narrow pie should start with the legend, got %q", rows[0])
	}
}

func TestRenderBarColumns(t *testing.T) {
	rows := plain(RenderLines(builtin(t, "barChart"), seededStore(t), mono(), 40, 8))
	labels := rows[7]
	if labels != "React     Vue       Angular   Svelte    " {
		t.Errorf("labels = %q", labels)
	}
	// React is the tallest bar and reaches the top row.
	if !strings.HasPrefix(rows[0], "█████████") {
		t.Errorf("top row = %q", rows[0])
	}
	if strings.TrimSpace(rows[0][len("█████████"):]) != "" {
		t.Errorf("only React should reach the top: %q", rows[0])
	}
}

func TestRenderBarRowsWhenShort(t *testing.T) {
	rows := plain(RenderLines(builtin(t, "barChart"), seededStore(t), mono(), 30, 3))
	want := []string{
		"React   " + strings.Repeat("█", 19) + " 90",
		"Vue     ",
		"Angular ",
	}
	if rows[0] != want[0] {
		t.Errorf("row 0 = %q, want %q", rows[0], want[0])
	}
	for i := 1; i < 3; i++ {
		if !strings.HasPrefix(rows[i], want[i]) {
			t.Errorf("row %d = %q, want prefix %q", i, rows[i], want[i])
		}
	}
}

func TestRenderUnknownKind(t *testing.T) {
	def := registry.Definition{Key: "odd", Kind: registry.RenderKind(42)}
	got := ansi.Strip(Render(def, nil, mono(), 30, 1))
	if !strings.HasPrefix(got, "unsupported kind") {
		t.Errorf("got %q", got)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{90, "90"},
		{12.3, "12.3"},
		{-3, "-3"},
		{0.5, "0.5"},
	}
	for _, tt := range tests {
		if got := formatValue(tt.in); got != tt.want {
			t.Errorf("formatValue(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRenderBatchMatchesSerial(t *testing.T) {
	store := seededStore(t)
	reg, err := registry.Builtin()
	if err != nil {
		t.Fatal(err)
	}
	var tasks []Task
	var want []string
	for i, key := range reg.Keys() {
		w, h := 20+i, 6+i%3
		def := reg.MustLookup(key)
		tasks = append(tasks, Task{Def: def, Width: w, Height: h})
		want = append(want, Render(def, store, mono(), w, h))
	}

	for _, workers := range []int{0, 1, 3, 64} {
		got := RenderBatch(tasks, store, mono(), workers)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("workers=%d mismatch (-want +got):\n%s", workers, diff)
		}
	}
}

func TestRenderBatchEmpty(t *testing.T) {
	if got := RenderBatch(nil, nil, mono(), 4); len(got) != 0 {
		t.Errorf("got %v", got)
	}
}
