package theme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// --- Registry ---

func TestBuiltinNames(t *testing.T) {
	want := []string{"dark", "light", "mono", "nord"}
	if diff := cmp.Diff(want, Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}

func TestGetFallsBackToDark(t *testing.T) {
	th := Get("no-such-theme")
	if th.Name != DefaultName {
		t.Errorf("Get(unknown).Name = %q, want %q", th.Name, DefaultName)
	}
	if _, ok := Lookup("no-such-theme"); ok {
		t.Error("Lookup(unknown) reported ok")
	}
	if Get("DARK").Name != "dark" {
		t.Error("lookup is not case insensitive")
	}
}

func TestDarkMatchesDashboard(t *testing.T) {
	th := Get("dark")
	if th.Guide != "#3b82f6" || th.Line != "#3b82f6" {
		t.Errorf("guide/line = %s/%s", th.Guide, th.Line)
	}
	want := []string{"#ff0000", "#82ca9d", "#ffc658", "#ff7373"}
	if diff := cmp.Diff(want, th.Palette); diff != "" {
		t.Errorf("palette mismatch (-want +got):\n%s", diff)
	}
}

func TestBuiltinsValidate(t *testing.T) {
	for _, name := range Names() {
		if err := thValidate(Get(name)); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}

func TestPaletteCycles(t *testing.T) {
	th := Get("dark")
	if th.PaletteColor(4) != th.PaletteColor(0) {
		t.Error("palette did not cycle")
	}
	if Get("mono").PaletteColor(0) != "" {
		t.Error("mono palette should be empty")
	}
}

func TestLookupCopiesPalette(t *testing.T) {
	th := Get("dark")
	th.Palette[0] = "#000000"
	if Get("dark").Palette[0] != "#ff0000" {
		t.Error("registry palette mutated through Get")
	}
}

// --- TOML ---

func TestLoadFromTOMLOverlaysBase(t *testing.T) {
	src := `
name = "ocean"

[widget]
guide = "#00ffff"

[chart]
palette = ["#111111", "#222222"]
`
	th, err := LoadFromTOML([]byte(src), "dark")
	if err != nil {
		t.Fatalf("LoadFromTOML: %v", err)
	}
	if th.Name != "ocean" || th.Guide != "#00ffff" {
		t.Errorf("overrides not applied: %+v", th)
	}
	if th.Border != Get("dark").Border {
		t.Errorf("Border = %q, want base value", th.Border)
	}
	if len(th.Palette) != 2 {
		t.Errorf("Palette = %v", th.Palette)
	}
}

func TestLoadFromTOMLErrors(t *testing.T) {
	tests := []struct {
		name, src, want string
	}{
		{"syntax", "name = ", "parse TOML"},
		{"no name", "[widget]\nguide = \"#000000\"", "missing required field"},
		{"bad colour", "name = \"x\"\n[base]\naccent = \"blue\"", "invalid hex color"},
		{"bad palette", "name = \"x\"\n[chart]\npalette = [\"#12\"]", "palette[0]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromTOML([]byte(tt.src), "dark")
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestSaveLoadFile(t *testing.T) {
	orig := Get("nord")
	data, err := SaveToTOML(orig)
	if err != nil {
		t.Fatalf("SaveToTOML: %v", err)
	}
	path := filepath.Join(t.TempDir(), "nord.toml")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	got, err := LoadFile(path, "mono")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if diff := cmp.Diff(orig, got); diff != "" {
		t.Errorf("file theme mismatch (-want +got):\n%s", diff)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml"), "dark"); err == nil {
		t.Error("LoadFile on missing path succeeded")
	}
}

func TestRegisterCustom(t *testing.T) {
	Register(Theme{Name: "Custom-Test", Guide: "#abcdef"})
	if Get("custom-test").Guide != "#abcdef" {
		t.Error("registered theme not found")
	}
	mu.Lock()
	delete(registry, "custom-test")
	mu.Unlock()
}
