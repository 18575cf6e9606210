package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"
)

func stripAll(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = ansi.Strip(l)
	}
	return out
}

// --- Style ---

func TestColor(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"#3b82f6", "\x1b[38;2;59;130;246m"},
		{"ff0000", "\x1b[38;2;255;0;0m"},
		{"#fff", "\x1b[38;2;255;255;255m"},
		{"", ""},
		{"#12345g", ""},
		{"#1234", ""},
	}
	for _, tt := range tests {
		if got := Color(tt.in); got != tt.want {
			t.Errorf("Color(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if BgColor("#000000") != "\x1b[48;2;0;0;0m" {
		t.Errorf("BgColor = %q", BgColor("#000000"))
	}
}

func TestPaint(t *testing.T) {
	if Paint("", "x") != "x" {
		t.Error("Paint without colour changed text")
	}
	got := Paint("#ff0000", "x")
	if ansi.Strip(got) != "x" || !strings.HasPrefix(got, "\x1b[38;2;255;0;0m") {
		t.Errorf("Paint = %q", got)
	}
	if !ValidHex("#abc") || ValidHex("abc") || ValidHex("#zzzzzz") {
		t.Error("ValidHex misclassified")
	}
}

// --- Text ---

func TestTextFitting(t *testing.T) {
	tests := []struct {
		name, got, want string
	}{
		{"fit truncates", Fit("hello", 3), "hel"},
		{"fit pads", Fit("hi", 4), "hi  "},
		{"fit zero", Fit("hi", 0), ""},
		{"pad left", PadLeft("7", 3), "  7"},
		{"pad center", PadCenter("ab", 5), " ab  "},
		{"pad noop", PadRight("abc", 2), "abc"},
		{"ellipsize", Ellipsize("Locations", 5), "Loca…"},
		{"ellipsize fits", Ellipsize("Roles", 5), "Roles"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, tt.got, tt.want)
		}
	}
	if VisibleLen(Paint("#ff0000", "abc")) != 3 {
		t.Error("VisibleLen counted escapes")
	}
	if lines := Wrap("one two three", 7); len(lines) != 2 {
		t.Errorf("Wrap = %q", lines)
	}
}

// --- Frame ---

func TestRenderFrameWithMarks(t *testing.T) {
	got := stripAll(RenderFrame("hi", 10, 3, FrameStyle{
		Title: "Skills", Closable: true, Resizable: true,
	}))
	want := []string{
		"╭─ Ski… ×╮",
		"│hi      │",
		"╰────────◢",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("frame mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderFramePlain(t *testing.T) {
	got := stripAll(RenderFrame("a\nb\nc", 20, 3, FrameStyle{Title: "Pie chart", Border: BorderSingle}))
	want := []string{
		"┌─ Pie chart ──────┐",
		"│a                 │",
		"└──────────────────┘",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("frame mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderFrameWidths(t *testing.T) {
	for _, w := range []int{2, 3, 6, 12, 40} {
		for _, row := range RenderFrame("content that is long", w, 4, FrameStyle{Title: "Title", Closable: true}) {
			if VisibleLen(row) != w {
				t.Errorf("width %d: row %q has width %d", w, ansi.Strip(row), VisibleLen(row))
			}
		}
	}
	if RenderFrame("x", 1, 5, FrameStyle{}) != nil {
		t.Error("expected nil for too-narrow frame")
	}
	if RenderBox("", 4, 2, FrameStyle{}) != "╭──╮\n╰──╯" {
		t.Errorf("RenderBox = %q", RenderBox("", 4, 2, FrameStyle{}))
	}
}

func TestParseBorder(t *testing.T) {
	if ParseBorder("HEAVY") != BorderHeavy || ParseBorder("nope") != BorderRounded {
		t.Error("ParseBorder mapping wrong")
	}
}

// --- Charts ---

func TestHBar(t *testing.T) {
	tests := []struct {
		ratio float64
		width int
		want  string
	}{
		{0.5, 4, "██  "},
		{1, 3, "███"},
		{2, 3, "███"},
		{0.3, 2, "▋ "},
		{-1, 2, "  "},
		{0.5, 0, ""},
	}
	for _, tt := range tests {
		if got := HBar(tt.ratio, tt.width); got != tt.want {
			t.Errorf("HBar(%v, %d) = %q, want %q", tt.ratio, tt.width, got, tt.want)
		}
	}
}

func TestColumns(t *testing.T) {
	got := Columns([]float64{1, 0.5}, 1, nil, 4, 2)
	want := []string{"██  ", "████"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("columns mismatch (-want +got):\n%s", diff)
	}

	got = stripAll(Columns([]float64{1, 0.5}, 1, []string{"#ff0000"}, 4, 1))
	if got[0] != "██▄▄" {
		t.Errorf("single row = %q", got[0])
	}

	blank := Columns(nil, 1, nil, 3, 2)
	if blank[0] != "   " || len(blank) != 2 {
		t.Errorf("blank = %q", blank)
	}
}

func TestLineChart(t *testing.T) {
	got := LineChart([]float64{0, 1}, "", 1, 1, false)
	if diff := cmp.Diff([]string{"⡜"}, got); diff != "" {
		t.Errorf("line mismatch (-want +got):\n%s", diff)
	}

	rows := LineChart([]float64{10, 50, 30, 90}, "#3b82f6", 30, 5, true)
	if len(rows) != 5 {
		t.Fatalf("rows = %d", len(rows))
	}
	if !strings.HasPrefix(ansi.Strip(rows[0]), " 90.0") {
		t.Errorf("top label row = %q", ansi.Strip(rows[0]))
	}
	if !strings.HasPrefix(ansi.Strip(rows[4]), " 10.0") {
		t.Errorf("bottom label row = %q", ansi.Strip(rows[4]))
	}
	for _, r := range rows {
		if VisibleLen(r) != 30 {
			t.Errorf("row width %d, want 30", VisibleLen(r))
		}
	}
}

func TestPieChart(t *testing.T) {
	if got := PieChart([]float64{1}, nil, 2, 1); got[0] != "⠰⠆" {
		t.Errorf("tiny disc = %q", got[0])
	}

	out := strings.Join(PieChart([]float64{1, 1}, []string{"#ff0000", "#00ff00"}, 10, 5), "")
	if !strings.Contains(out, Color("#ff0000")) || !strings.Contains(out, Color("#00ff00")) {
		t.Error("two equal slices did not both appear")
	}

	empty := PieChart(nil, nil, 3, 1)
	if empty[0] != "   " {
		t.Errorf("empty pie = %q", empty[0])
	}
}

func TestBrailleIgnoresOutOfRange(t *testing.T) {
	c := NewBraille(1, 1)
	c.Set(-1, 0, 0)
	c.Set(2, 0, 0)
	c.Set(0, 4, 0)
	if c.Rows(nil)[0] != " " {
		t.Error("out-of-range dot was drawn")
	}
}
