package scenario

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"gitlab.com/foundationdata/widgetboard/pkg/board"
	"gitlab.com/foundationdata/widgetboard/pkg/geometry"
	"gitlab.com/foundationdata/widgetboard/pkg/snap"
)

func rectOf(b *board.Board, id string) *geometry.Rect {
	in, ok := b.Get(id)
	if !ok {
		return nil
	}
	r := in.Rect()
	return &r
}

// FormatGuide renders a guide as "v 243,40 4x150" (vertical) or
// "h 40,188 200x4" (horizontal).
func FormatGuide(g snap.Guide) string {
	dir := "h"
	if g.Vertical() {
		dir = "v"
	}
	return fmt.Sprintf("%s %g,%g %gx%g", dir, g.X, g.Y, g.Width, g.Height)
}

func formatRect(r *geometry.Rect) string {
	if r == nil {
		return "gone"
	}
	return fmt.Sprintf("%g,%g %gx%g", r.X, r.Y, r.Width, r.Height)
}

// WriteText renders the report as two tables: the steps, then the final
// board.
func (r Report) WriteText(w io.Writer) error {
	header := lipgloss.NewStyle().Bold(true)
	style := func(row, _ int) lipgloss.Style {
		if row == -1 { // header row
			return header
		}
		return lipgloss.NewStyle().Padding(0, 1)
	}

	steps := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "op", "kind", "result", "guides").
		StyleFunc(style)
	for _, s := range r.Steps {
		result := formatRect(s.After)
		if s.Snap != nil {
			result = fmt.Sprintf("snap %g,%g", s.Snap.X, s.Snap.Y)
			if len(s.Guides) == 0 && len(s.Snap.Guides) > 0 {
				s.Guides = s.Snap.Guides
			}
		}
		guides := make([]string, len(s.Guides))
		for i, g := range s.Guides {
			guides[i] = FormatGuide(g)
		}
		steps.Row(fmt.Sprint(s.Step), string(s.Op), s.Kind, result, strings.Join(guides, "; "))
	}

	final := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("id", "kind", "x", "y", "width", "height", "z").
		StyleFunc(style)
	for _, in := range r.Final {
		final.Row(in.ID, in.Kind, fmt.Sprintf("%g", in.X), fmt.Sprintf("%g", in.Y),
			fmt.Sprintf("%g", in.Width), fmt.Sprintf("%g", in.Height), fmt.Sprint(in.Z))
	}

	var b strings.Builder
	if r.Name != "" {
		b.WriteString(header.Render(r.Name) + "\n")
	}
	b.WriteString(steps.Render() + "\n")
	b.WriteString("final board\n")
	b.WriteString(final.Render() + "\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteYAML encodes the report as YAML.
func (r Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}
