package geometry

import (
	"math"
	"testing"
)

// --- Overlap1D ---

func TestOverlap1D(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd float64
		want                       float64
	}{
		{"identical", 0, 10, 0, 10, 10},
		{"partial", 0, 10, 5, 20, 5},
		{"contained", 0, 100, 40, 60, 20},
		{"touching", 0, 10, 10, 20, 0},
		{"disjoint", 0, 10, 30, 40, 0},
		{"reversed order", 30, 40, 0, 35, 5},
		{"fractional", 0.5, 2.25, 1, 3, 1.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlap1D(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd)
			if got != tt.want {
				t.Errorf("Overlap1D(%v,%v,%v,%v) = %v, want %v",
					tt.aStart, tt.aEnd, tt.bStart, tt.bEnd, got, tt.want)
			}
		})
	}
}

func TestVerticalAndHorizontalOverlap(t *testing.T) {
	a := Rect{X: 40, Y: 40, Width: 200, Height: 150}
	b := Rect{X: 245, Y: 100, Width: 200, Height: 150}

	if got := VerticalOverlap(a, b); got != 90 {
		t.Errorf("VerticalOverlap = %v, want 90", got)
	}
	if got := HorizontalOverlap(a, b); got != 0 {
		t.Errorf("HorizontalOverlap = %v, want 0", got)
	}
}

// --- Rect ---

func TestRectEdges(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	if r.Right() != 40 {
		t.Errorf("Right() = %v, want 40", r.Right())
	}
	if r.Bottom() != 60 {
		t.Errorf("Bottom() = %v, want 60", r.Bottom())
	}
}

func TestRectContainsEdgeInclusivity(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	if !r.Contains(0, 0) {
		t.Error("top-left corner should be inside")
	}
	if r.Contains(10, 5) {
		t.Error("right edge should be outside")
	}
	if r.Contains(5, 10) {
		t.Error("bottom edge should be outside")
	}
}

func TestRectFinite(t *testing.T) {
	if !(Rect{X: 1, Y: 2, Width: 3, Height: 4}).Finite() {
		t.Error("plain rect should be finite")
	}
	if (Rect{X: math.NaN(), Width: 1, Height: 1}).Finite() {
		t.Error("NaN X should not be finite")
	}
	if (Rect{Y: math.Inf(-1), Width: 1, Height: 1}).Finite() {
		t.Error("-Inf Y should not be finite")
	}
}

func TestClamp(t *testing.T) {
	bounds := Rect{X: 0, Y: 0, Width: 1000, Height: 800}
	tests := []struct {
		name string
		in   Rect
		want Rect
	}{
		{"inside unchanged", Rect{X: 10, Y: 10, Width: 100, Height: 100}, Rect{X: 10, Y: 10, Width: 100, Height: 100}},
		{"negative origin", Rect{X: -30, Y: -5, Width: 100, Height: 100}, Rect{X: 0, Y: 0, Width: 100, Height: 100}},
		{"past right bottom", Rect{X: 950, Y: 790, Width: 100, Height: 100}, Rect{X: 900, Y: 700, Width: 100, Height: 100}},
		{"larger than bounds", Rect{X: 50, Y: 50, Width: 2000, Height: 900}, Rect{X: 0, Y: 0, Width: 2000, Height: 900}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.in, bounds); got != tt.want {
				t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// --- Scale ---

func TestScaleToCells(t *testing.T) {
	s := Scale{CellW: 10, CellH: 20}
	got := s.ToCells(Rect{X: 40, Y: 40, Width: 200, Height: 150})
	want := CellRect{X: 4, Y: 2, W: 20, H: 8}
	if got != want {
		t.Errorf("ToCells = %+v, want %+v", got, want)
	}
}

func TestScaleToCellsMinimumOneCell(t *testing.T) {
	s := Scale{CellW: 10, CellH: 20}
	got := s.ToCells(Rect{X: 0, Y: 0, Width: 2, Height: 2})
	if got.W != 1 || got.H != 1 {
		t.Errorf("tiny rect should map to 1x1 cells, got %dx%d", got.W, got.H)
	}
}

func TestScaleZeroFallsBackToDefault(t *testing.T) {
	x, y := Scale{}.ToPixels(3, 2)
	if x != 3*DefaultCellW || y != 2*DefaultCellH {
		t.Errorf("ToPixels with zero scale = (%v,%v), want (%v,%v)", x, y, 3*DefaultCellW, 2*DefaultCellH)
	}
}
