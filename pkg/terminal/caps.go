package terminal

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Caps summarises what the output terminal supports.
type Caps struct {
	TTY     bool
	Profile termenv.Profile
	Mux     bool // inside tmux or screen
}

// Detect inspects f and the environment.
func Detect(f *os.File) Caps {
	tty := isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	profile := termenv.Ascii
	if tty {
		profile = termenv.NewOutput(f).EnvColorProfile()
	}
	return Caps{
		TTY:     tty,
		Profile: profile,
		Mux:     os.Getenv("TMUX") != "" || os.Getenv("STY") != "",
	}
}

// Color reports whether any colour can be shown.
func (c Caps) Color() bool {
	return c.Profile != termenv.Ascii
}

// ThemeName picks the theme to draw with: the configured one, unless the
// terminal cannot show colour.
func (c Caps) ThemeName(configured string) string {
	if !c.Color() {
		return "mono"
	}
	return configured
}
