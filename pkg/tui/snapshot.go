package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// LineDiff is one differing row between an expected and a rendered board.
type LineDiff struct {
	Line int // 1-based
	Want string
	Got  string
}

// PlainRows strips styling and trailing blanks so rendered rows can be
// compared with a golden file written from any terminal.
func PlainRows(rows []string) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = strings.TrimRight(ansi.Strip(r), " ")
	}
	return out
}

// DiffRows compares rendered rows with the expected text, ignoring styling
// and trailing blanks. It returns nil when they match.
func DiffRows(want string, rows []string) []LineDiff {
	exp := PlainRows(strings.Split(strings.TrimRight(want, "\n"), "\n"))
	got := PlainRows(rows)
	for len(got) > 0 && got[len(got)-1] == "" {
		got = got[:len(got)-1]
	}

	var diffs []LineDiff
	for i := 0; i < max(len(exp), len(got)); i++ {
		var w, g string
		if i < len(exp) {
			w = exp[i]
		}
		if i < len(got) {
			g = got[i]
		}
		if w != g {
			diffs = append(diffs, LineDiff{Line: i + 1, Want: w, Got: g})
		}
	}
	return diffs
}
