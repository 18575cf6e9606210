package theme

import (
	"bytes"
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

// thTOMLTheme is the on-disk layout of a theme file.
type thTOMLTheme struct {
	Name   string       `toml:"name"`
	Base   thTOMLBase   `toml:"base"`
	Widget thTOMLWidget `toml:"widget"`
	Chart  thTOMLChart  `toml:"chart"`
	Status thTOMLStatus `toml:"status"`
}

type thTOMLBase struct {
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
	Dim        string `toml:"dim"`
	Accent     string `toml:"accent"`
	Header     string `toml:"header"`
	Sidebar    string `toml:"sidebar"`
}

type thTOMLWidget struct {
	Border      string `toml:"border"`
	BorderFocus string `toml:"border_focus"`
	Title       string `toml:"title"`
	Guide       string `toml:"guide"`
	BorderStyle string `toml:"border_style"`
	FocusStyle  string `toml:"focus_style"`
}

type thTOMLChart struct {
	Line    string   `toml:"line"`
	Palette []string `toml:"palette"`
}

type thTOMLStatus struct {
	OK       string `toml:"ok"`
	Error    string `toml:"error"`
	HelpKey  string `toml:"help_key"`
	HelpDesc string `toml:"help_desc"`
}

var thHexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// LoadFromTOML parses a theme file. Colours missing from the file are taken
// from the theme named by base, so a file may override only what it needs.
func LoadFromTOML(data []byte, base string) (Theme, error) {
	var tt thTOMLTheme
	if err := toml.Unmarshal(data, &tt); err != nil {
		return Theme{}, fmt.Errorf("theme: parse TOML: %w", err)
	}
	if tt.Name == "" {
		return Theme{}, fmt.Errorf("theme: missing required field %q", "name")
	}

	t := Get(base)
	t.Name = tt.Name
	over := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	over(&t.Background, tt.Base.Background)
	over(&t.Foreground, tt.Base.Foreground)
	over(&t.Dim, tt.Base.Dim)
	over(&t.Accent, tt.Base.Accent)
	over(&t.Header, tt.Base.Header)
	over(&t.Sidebar, tt.Base.Sidebar)
	over(&t.Border, tt.Widget.Border)
	over(&t.BorderFocus, tt.Widget.BorderFocus)
	over(&t.Title, tt.Widget.Title)
	over(&t.Guide, tt.Widget.Guide)
	over(&t.BorderStyle, tt.Widget.BorderStyle)
	over(&t.FocusStyle, tt.Widget.FocusStyle)
	over(&t.Line, tt.Chart.Line)
	over(&t.StatusOK, tt.Status.OK)
	over(&t.StatusError, tt.Status.Error)
	over(&t.HelpKey, tt.Status.HelpKey)
	over(&t.HelpDesc, tt.Status.HelpDesc)
	if len(tt.Chart.Palette) > 0 {
		t.Palette = append([]string(nil), tt.Chart.Palette...)
	}

	if err := thValidate(t); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// LoadFile reads a theme file from path.
func LoadFile(path, base string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: read %s: %w", path, err)
	}
	return LoadFromTOML(data, base)
}

// SaveToTOML serialises t in the theme file layout.
func SaveToTOML(t Theme) ([]byte, error) {
	tt := thTOMLTheme{
		Name: t.Name,
		Base: thTOMLBase{
			Background: t.Background, Foreground: t.Foreground, Dim: t.Dim,
			Accent: t.Accent, Header: t.Header, Sidebar: t.Sidebar,
		},
		Widget: thTOMLWidget{
			Border: t.Border, BorderFocus: t.BorderFocus, Title: t.Title,
			Guide: t.Guide, BorderStyle: t.BorderStyle, FocusStyle: t.FocusStyle,
		},
		Chart:  thTOMLChart{Line: t.Line, Palette: t.Palette},
		Status: thTOMLStatus{OK: t.StatusOK, Error: t.StatusError, HelpKey: t.HelpKey, HelpDesc: t.HelpDesc},
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(tt); err != nil {
		return nil, fmt.Errorf("theme: encode TOML: %w", err)
	}
	return buf.Bytes(), nil
}

// thValidate checks every non-empty colour is #rrggbb.
func thValidate(t Theme) error {
	colors := map[string]string{
		"background": t.Background, "foreground": t.Foreground, "dim": t.Dim,
		"accent": t.Accent, "header": t.Header, "sidebar": t.Sidebar,
		"border": t.Border, "border_focus": t.BorderFocus, "title": t.Title,
		"guide": t.Guide, "line": t.Line, "ok": t.StatusOK, "error": t.StatusError,
		"help_key": t.HelpKey, "help_desc": t.HelpDesc,
	}
	for field, v := range colors {
		if v != "" && !thHexColor.MatchString(v) {
			return fmt.Errorf("theme: invalid hex color %q for field %q (expected #RRGGBB)", v, field)
		}
	}
	for i, v := range t.Palette {
		if !thHexColor.MatchString(v) {
			return fmt.Errorf("theme: invalid hex color %q for palette[%d]", v, i)
		}
	}
	return nil
}
