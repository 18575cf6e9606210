package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"

	"gitlab.com/foundationdata/widgetboard/pkg/geometry"
	"gitlab.com/foundationdata/widgetboard/pkg/registry"
	"gitlab.com/foundationdata/widgetboard/pkg/snap"
	"gitlab.com/foundationdata/widgetboard/pkg/theme"
)

// --- helpers ---

func stripped(rows []string) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = ansi.Strip(r)
	}
	return out
}

func frame(id string, x, y, w, h int) Frame {
	return Frame{ID: id, Cell: geometry.CellRect{X: x, Y: y, W: w, H: h}}
}

// --- Canvas ---

func TestCanvasOverlay(t *testing.T) {
	c := NewCanvas(8, 3)
	c.Overlay(2, 1, []string{"abc", "def"})
	c.Overlay(3, 2, []string{"XY"})

	want := []string{
		"        ",
		"  abc   ",
		"  dXY   ",
	}
	if diff := cmp.Diff(want, stripped(c.Rows())); diff != "" {
		t.Errorf("canvas mismatch (-want +got):\n%s", diff)
	}
}

func TestCanvasOverlayClips(t *testing.T) {
	c := NewCanvas(5, 2)
	c.Overlay(-2, -1, []string{"hidden", "abcdef"})
	c.Overlay(3, 0, []string{"wxyz"})

	want := []string{"cdewx", "     "}
	if diff := cmp.Diff(want, stripped(c.Rows())); diff != "" {
		t.Errorf("clipped canvas mismatch (-want +got):\n%s", diff)
	}
	for _, r := range c.Rows() {
		if w := ansi.StringWidth(r); w != 5 {
			t.Errorf("row width = %d, want 5", w)
		}
	}
}

func TestCanvasKeepsStyles(t *testing.T) {
	c := NewCanvas(4, 1)
	c.Overlay(0, 0, []string{"\x1b[31mred!\x1b[0m"})
	c.Set(1, 0, "x")
	if got := ansi.Strip(c.String()); got != "rxd!" {
		t.Errorf("got %q", got)
	}
	if !strings.Contains(c.String(), "\x1b[31m") {
		t.Error("colour escape lost")
	}
}

func TestNewCanvasNegative(t *testing.T) {
	c := NewCanvas(-1, -4)
	if c.Width() != 0 || c.Height() != 0 || c.String() != "" {
		t.Errorf("negative canvas = %dx%d %q", c.Width(), c.Height(), c.String())
	}
}

// --- RenderBoard ---

func TestRenderBoardStacksByOrder(t *testing.T) {
	th := theme.Get("mono")
	a := frame("a", 0, 0, 6, 3)
	a.Content = "aaaa"
	b := frame("b", 3, 1, 6, 3)
	b.Content = "bbbb"

	got := stripped(RenderBoard(10, 4, []Frame{a, b}, nil, geometry.DefaultScale(), th))
	want := []string{
		"┌───×┐    ",
		"│aa┌───×┐ ",
		"└──│bbbb│ ",
		"   └────◢ ",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("board mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderBoardFocusUsesFocusBorder(t *testing.T) {
	f := frame("a", 0, 0, 5, 3)
	f.Focused = true
	got := stripped(RenderBoard(5, 3, []Frame{f}, nil, geometry.DefaultScale(), theme.Get("mono")))
	if !strings.HasPrefix(got[0], "╔") {
		t.Errorf("focused top row = %q", got[0])
	}
}

func TestRenderBoardGuidesOnTop(t *testing.T) {
	th := theme.Get("mono")
	// Vertical guide on the edge at x=30px, rows 0..2 at the default scale.
	guides := []snap.Guide{{X: 28, Y: 0, Width: 4, Height: 60}}
	got := stripped(RenderBoard(6, 4, []Frame{frame("a", 0, 0, 4, 3)}, guides, geometry.DefaultScale(), th))
	for y := 0; y < 3; y++ {
		if r := []rune(got[y]); r[3] != '┃' {
			t.Errorf("row %d = %q, want guide at column 3", y, got[y])
		}
	}
	if []rune(got[3])[3] != ' ' {
		t.Errorf("guide overran: %q", got[3])
	}
}

func TestGuideCells(t *testing.T) {
	s := geometry.DefaultScale()
	tests := []struct {
		name string
		g    snap.Guide
		want geometry.CellRect
	}{
		{"vertical", snap.Guide{X: 243, Y: 40, Width: 4, Height: 150}, geometry.CellRect{X: 25, Y: 2, W: 1, H: 8}},
		{"horizontal", snap.Guide{X: 40, Y: 188, Width: 200, Height: 4}, geometry.CellRect{X: 4, Y: 10, W: 20, H: 1}},
		{"short vertical", snap.Guide{X: 98, Y: 0, Width: 4, Height: 2}, geometry.CellRect{X: 10, Y: 0, W: 1, H: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GuideCells(tt.g, s); got != tt.want {
				t.Errorf("GuideCells = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// --- hit testing ---

func TestHitTest(t *testing.T) {
	frames := []Frame{frame("under", 0, 0, 10, 5), frame("over", 5, 2, 10, 5)}
	tests := []struct {
		x, y     int
		wantID   string
		wantPart Part
	}{
		{1, 1, "under", PartBody},
		{8, 0, "under", PartClose},
		{6, 3, "over", PartBody},
		{13, 2, "over", PartClose},
		{14, 6, "over", PartCorner},
		{14, 4, "over", PartRight},
		{9, 6, "over", PartBottom},
		{9, 1, "under", PartRight},
		{20, 20, "", PartNone},
	}
	for _, tt := range tests {
		f, p := HitTest(frames, tt.x, tt.y)
		if f.ID != tt.wantID || p != tt.wantPart {
			t.Errorf("HitTest(%d,%d) = %q %s, want %q %s", tt.x, tt.y, f.ID, p, tt.wantID, tt.wantPart)
		}
	}
}

func TestFrameInner(t *testing.T) {
	w, h := frame("a", 0, 0, 20, 8).Inner()
	if w != 18 || h != 6 {
		t.Errorf("Inner = %dx%d", w, h)
	}
	w, h = frame("a", 0, 0, 1, 1).Inner()
	if w != 0 || h != 0 {
		t.Errorf("tiny Inner = %dx%d", w, h)
	}
}

// --- bars and search ---

func TestRenderStatusBar(t *testing.T) {
	got := ansi.Strip(RenderStatusBar("added Skills", "q:quit", 30))
	if got != "added Skills  |  q:quit       " {
		t.Errorf("status = %q", got)
	}
	if got := ansi.Strip(RenderStatusBar("", "tab:focus  q:quit", 8)); got != "tab:focu" {
		t.Errorf("truncated status = %q", got)
	}
	if RenderStatusBar("x", "y", 0) != "" {
		t.Error("zero width should be empty")
	}
}

func TestRenderSearchBar(t *testing.T) {
	if got := RenderSearchBar("pie", 8); got != "/pie_   " {
		t.Errorf("search bar = %q", got)
	}
}

func TestFilterDefinitions(t *testing.T) {
	defs := registry.BuiltinDefinitions()
	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"Skills", "Salary", "Roles", "Locations", "Reports", "lineGraph", "pieChart", "barChart"}},
		{"chart", []string{"pieChart", "barChart"}},
		{"  LINE ", []string{"lineGraph"}},
		{"zzz", nil},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, FilterDefinitions(defs, tt.query)); diff != "" {
			t.Errorf("FilterDefinitions(%q) mismatch (-want +got):\n%s", tt.query, diff)
		}
	}
}

func TestFeedHealth(t *testing.T) {
	tests := []struct {
		name   string
		health map[string]bool
		want   string
	}{
		{"no feeds", nil, ""},
		{"all healthy", map[string]bool{"analytics": true, "host": true}, "feeds ok"},
		{"one down", map[string]bool{"analytics": true, "host": false}, "feed down: host"},
		{"sorted", map[string]bool{"host": false, "analytics": false}, "feed down: analytics, host"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FeedHealth(tt.health); got != tt.want {
				t.Errorf("FeedHealth() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDiffRows(t *testing.T) {
	rows := []string{"\x1b[31m┌──┐\x1b[0m   ", "│ab│", "└──┘", "    "}
	if d := DiffRows("┌──┐\n│ab│\n└──┘\n", rows); d != nil {
		t.Errorf("matching rows reported %+v", d)
	}

	d := DiffRows("┌──┐\n│ax│\n└──┘\nextra", rows)
	want := []LineDiff{
		{Line: 2, Want: "│ax│", Got: "│ab│"},
		{Line: 4, Want: "extra", Got: ""},
	}
	if diff := cmp.Diff(want, d); diff != "" {
		t.Errorf("diffs mismatch (-want +got):\n%s", diff)
	}
}
