package terminal

import (
	"os"
	"testing"

	"github.com/muesli/termenv"

	"gitlab.com/foundationdata/widgetboard/pkg/geometry"
)

func TestEnvInt(t *testing.T) {
	tests := []struct {
		val  string
		want int
	}{
		{"", 80},
		{"120", 120},
		{"-5", 80},
		{"abc", 80},
		{"0", 80},
	}
	for _, tt := range tests {
		t.Setenv("WB_TEST_COLS", tt.val)
		if got := envInt("WB_TEST_COLS", 80); got != tt.want {
			t.Errorf("envInt(%q) = %d, want %d", tt.val, got, tt.want)
		}
	}
}

func TestSizeFromEnv(t *testing.T) {
	t.Setenv("COLUMNS", "132")
	t.Setenv("LINES", "43")
	s := sizeFromEnv()
	if s.Cols != 132 || s.Rows != 43 {
		t.Errorf("sizeFromEnv = %+v", s)
	}
}

func TestScale(t *testing.T) {
	s := Size{Cols: 100, Rows: 50, PixelW: 900, PixelH: 1800}.withCells()
	if s.CellW != 9 || s.CellH != 36 {
		t.Fatalf("cells = %dx%d", s.CellW, s.CellH)
	}
	if got := s.Scale(); got != (geometry.Scale{CellW: 9, CellH: 36}) {
		t.Errorf("Scale() = %+v", got)
	}
	if got := (Size{Cols: 80, Rows: 24}).Scale(); got != geometry.DefaultScale() {
		t.Errorf("no-pixel Scale() = %+v", got)
	}
}

func TestDetectNonTTY(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	caps := Detect(f)
	if caps.TTY || caps.Color() {
		t.Errorf("file detected as colour terminal: %+v", caps)
	}
	if caps.ThemeName("nord") != "mono" {
		t.Error("non-colour output should use mono")
	}
}

func TestThemeNameWithColor(t *testing.T) {
	caps := Caps{TTY: true, Profile: termenv.TrueColor}
	if caps.ThemeName("nord") != "nord" {
		t.Error("configured theme ignored on colour terminal")
	}
}
