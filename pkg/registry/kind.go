package registry

import (
	"fmt"
	"strings"
)

// RenderKind is the closed set of content types a widget can display.
type RenderKind int

const (
	// KindText shows a block of text lines.
	KindText RenderKind = iota
	// KindLine shows a time-series line graph.
	KindLine
	// KindPie shows categorical shares.
	KindPie
	// KindBar shows categorical magnitudes.
	KindBar
)

var kindNames = [...]string{
	KindText: "text",
	KindLine: "line",
	KindPie:  "pie",
	KindBar:  "bar",
}

// String returns the lowercase name used in configuration files.
func (k RenderKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("RenderKind(%d)", int(k))
	}
	return kindNames[k]
}

// IsChart reports whether the kind draws a chart rather than text.
func (k RenderKind) IsChart() bool {
	return k == KindLine || k == KindPie || k == KindBar
}

// ParseRenderKind converts a name such as "pie" into a RenderKind.
func ParseRenderKind(s string) (RenderKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return RenderKind(k), nil
		}
	}
	return 0, fmt.Errorf("registry: unknown render kind %q", s)
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (k *RenderKind) UnmarshalText(text []byte) error {
	parsed, err := ParseRenderKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (k RenderKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
