// Package perf holds the budgets and fixtures for the board's hot paths:
// snapping during a drag, moving a widget and redrawing the canvas. A drag
// redraws on every mouse motion event, so these run many times a second.
// All private helpers are prefixed with "pf".
package perf

import "testing"

// Threshold is the budget for one named benchmark.
type Threshold struct {
	Name     string
	MaxNs    int64 // per op; zero disables the check
	MaxAlloc int64 // bytes per op; zero disables the check
}

// Violation records one exceeded budget.
type Violation struct {
	Threshold Threshold
	Actual    int64
	Field     string // "ns" or "alloc"
}

// DefaultThresholds returns the budgets for Suite, in the same order.
//
// A drag must keep up with terminal mouse motion, roughly 60 events a
// second, so snap plus move plus a full redraw has to fit well inside 16ms.
func DefaultThresholds() []Threshold {
	return []Threshold{
		{Name: "snap_12_neighbours", MaxNs: 50_000, MaxAlloc: 4096},
		{Name: "drag_move", MaxNs: 200_000, MaxAlloc: 16384},
		{Name: "widget_batch", MaxNs: 5_000_000, MaxAlloc: 2_097_152},
		{Name: "render_board", MaxNs: 10_000_000, MaxAlloc: 4_194_304},
	}
}

// CheckRegression compares named results against thresholds and returns
// every breach, in threshold order. Thresholds without a result are
// skipped.
func CheckRegression(results map[string]testing.BenchmarkResult, thresholds []Threshold) []Violation {
	var out []Violation
	for _, th := range thresholds {
		r, ok := results[th.Name]
		if !ok || r.N == 0 {
			continue
		}
		if ns := r.NsPerOp(); th.MaxNs > 0 && ns > th.MaxNs {
			out = append(out, Violation{Threshold: th, Actual: ns, Field: "ns"})
		}
		if alloc := r.AllocedBytesPerOp(); th.MaxAlloc > 0 && alloc > th.MaxAlloc {
			out = append(out, Violation{Threshold: th, Actual: alloc, Field: "alloc"})
		}
	}
	return out
}
