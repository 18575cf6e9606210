// Package terminal answers the questions the board asks about the terminal
// it runs in: how large it is, how many pixels a cell covers, and how much
// colour it can show.
package terminal

import (
	"os"
	"strconv"

	"gitlab.com/foundationdata/widgetboard/pkg/geometry"
)

// Size is the terminal size in cells and, when the terminal reports it,
// pixels.
type Size struct {
	Cols   int
	Rows   int
	PixelW int
	PixelH int
	CellW  int
	CellH  int
}

// GetSize queries stdout, then stderr, then COLUMNS/LINES, then assumes
// 80x24.
func GetSize() Size {
	for _, f := range []*os.File{os.Stdout, os.Stderr} {
		if s := sizeFromFd(f.Fd()); s.Cols > 0 && s.Rows > 0 {
			return s
		}
	}
	return sizeFromEnv()
}

func sizeFromEnv() Size {
	return Size{Cols: envInt("COLUMNS", 80), Rows: envInt("LINES", 24)}
}

func envInt(name string, fallback int) int {
	n, err := strconv.Atoi(os.Getenv(name))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

// withCells derives per-cell pixel sizes from the totals.
func (s Size) withCells() Size {
	if s.PixelW > 0 && s.Cols > 0 {
		s.CellW = s.PixelW / s.Cols
	}
	if s.PixelH > 0 && s.Rows > 0 {
		s.CellH = s.PixelH / s.Rows
	}
	return s
}

// Scale converts the reported cell size into a board scale. Terminals that
// do not report pixels get the default 10x20 scale.
func (s Size) Scale() geometry.Scale {
	if s.CellW <= 0 || s.CellH <= 0 {
		return geometry.DefaultScale()
	}
	return geometry.Scale{CellW: float64(s.CellW), CellH: float64(s.CellH)}
}
