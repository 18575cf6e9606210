package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// --- Rect ---

func TestRectHelpers(t *testing.T) {
	r := Rect{X: 2, Y: 3, Width: 10, Height: 4}
	if r.Right() != 12 || r.Bottom() != 7 {
		t.Errorf("edges = %d %d", r.Right(), r.Bottom())
	}
	if !r.Contains(2, 3) || r.Contains(12, 3) || r.Contains(5, 7) {
		t.Error("Contains edge handling wrong")
	}
	if got := r.Inner(1); got != (Rect{X: 3, Y: 4, Width: 8, Height: 2}) {
		t.Errorf("Inner(1) = %+v", got)
	}
	if !r.Inner(5).Empty() {
		t.Error("Inner beyond size not empty")
	}
}

// --- Split ---

func TestSplit(t *testing.T) {
	area := Rect{Width: 100, Height: 40}
	tests := []struct {
		name string
		l    *Layout
		want []Rect
	}{
		{
			name: "screen chrome",
			l:    New(Vertical, Length{1}, Fill{1}, Length{1}),
			want: []Rect{{0, 0, 100, 1}, {0, 1, 100, 38}, {0, 39, 100, 1}},
		},
		{
			name: "sidebar and canvas",
			l:    New(Horizontal, Length{24}, Fill{1}),
			want: []Rect{{0, 0, 24, 40}, {24, 0, 76, 40}},
		},
		{
			name: "weighted fill",
			l:    New(Horizontal, Fill{1}, Fill{3}),
			want: []Rect{{0, 0, 25, 40}, {25, 0, 75, 40}},
		},
		{
			name: "min grows without fill",
			l:    New(Horizontal, Length{10}, Min{20}),
			want: []Rect{{0, 0, 10, 40}, {10, 0, 90, 40}},
		},
		{
			name: "percentage",
			l:    New(Horizontal, Percentage{30}, Fill{1}),
			want: []Rect{{0, 0, 30, 40}, {30, 0, 70, 40}},
		},
		{
			name: "spacing",
			l:    New(Horizontal, Fill{1}, Fill{1}).WithSpacing(2),
			want: []Rect{{0, 0, 49, 40}, {51, 0, 49, 40}},
		},
		{
			name: "over-committed grants in order",
			l:    New(Horizontal, Length{80}, Length{40}),
			want: []Rect{{0, 0, 80, 40}, {80, 0, 20, 40}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.l.Split(area)); diff != "" {
				t.Errorf("Split mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSplitEdgeCases(t *testing.T) {
	if New(Horizontal).Split(Rect{Width: 10}) != nil {
		t.Error("no constraints should yield nil")
	}
	got := SplitHorizontal(Rect{Width: 0, Height: 5}, Length{3}, Fill{1})
	if got[0].Width != 0 || got[1].Width != 0 {
		t.Errorf("zero area split = %+v", got)
	}
	got = SplitVertical(Rect{X: 4, Y: 2, Width: 10, Height: 5}, Fill{0}, Fill{0})
	want := []Rect{{4, 2, 10, 2}, {4, 4, 10, 3}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("offset split mismatch (-want +got):\n%s", diff)
	}
}
