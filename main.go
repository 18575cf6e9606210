// widgetboard is a free-form dashboard for the terminal.
//
// Widgets are placed on a canvas from the sidebar catalog, then dragged,
// resized and stacked with the mouse or keyboard. Dragged edges snap to
// neighbouring widgets and highlight the alignment with guide lines.
//
// Usage:
//
//	widgetboard [flags]
//	widgetboard replay <file> [--format text|yaml] [--render]
//	widgetboard widgets
//	widgetboard themes
//
// Flags:
//
//	-c, --config string  Path to configuration file (default: XDG search)
//	-v, --verbose        Enable debug logging
//	    --version        Print version and exit
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gitlab.com/foundationdata/widgetboard/pkg/cli"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cli.SetVersion(version, commit, date)
	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
