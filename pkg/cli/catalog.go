package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"gitlab.com/foundationdata/widgetboard/pkg/registry"
	"gitlab.com/foundationdata/widgetboard/pkg/theme"
)

func newTable(headers ...string) *table.Table {
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == -1 {
				return header
			}
			return cell
		})
}

func (c *CLI) widgetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "widgets",
		Short: "List the widgets the sidebar offers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			reg, err := buildRegistry(cfg)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), widgetTable(reg))
			return nil
		},
	}
}

func widgetTable(reg *registry.Registry) string {
	t := newTable("group", "key", "title", "kind", "size", "data")
	for _, g := range reg.Groups() {
		for _, key := range g.Keys {
			d := reg.MustLookup(key)
			t.Row(g.Name, d.Key, d.Title, d.Kind.String(),
				fmt.Sprintf("%gx%g", d.DefaultWidth, d.DefaultHeight), dataSource(d.Data))
		}
	}
	return t.Render()
}

func dataSource(ref registry.DataRef) string {
	switch {
	case ref.Series != "":
		return "series " + ref.Series
	case ref.Categories != "":
		return "categories " + ref.Categories
	case len(ref.Lines) == 1:
		return "1 line"
	default:
		return fmt.Sprintf("%d lines", len(ref.Lines))
	}
}

func (c *CLI) themesCommand() *cobra.Command {
	var export string
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List the available themes",
		Long: `List the available themes, marking the configured one.

With --export, print the named theme as a TOML theme file instead. The
output can be edited and loaded back through the [theme] file setting.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if export != "" {
				th, ok := theme.Lookup(export)
				if !ok {
					return fmt.Errorf("no theme named %q", export)
				}
				buf, err := theme.SaveToTOML(th)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(buf)
				return err
			}
			cfg, err := c.loadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), themeTable(cfg.Theme.Name))
			return nil
		},
	}
	cmd.Flags().StringVar(&export, "export", "", "print the named theme as TOML")
	return cmd
}

func themeTable(active string) string {
	t := newTable("", "name", "border", "focus", "accent", "palette")
	for _, name := range theme.Names() {
		th := theme.Get(name)
		mark := ""
		if strings.EqualFold(name, active) {
			mark = "*"
		}
		t.Row(mark, th.Name, th.BorderStyle, th.FocusStyle, th.Accent, fmt.Sprintf("%d colours", len(th.Palette)))
	}
	return t.Render()
}
