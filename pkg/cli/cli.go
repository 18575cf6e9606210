// Package cli implements the widgetboard command line.
//
// The root command runs the interactive board. Subcommands replay scripted
// sessions headlessly and list the built-in widgets and themes.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"gitlab.com/foundationdata/widgetboard/pkg/config"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersion sets the build information shown by --version.
func SetVersion(v, c, d string) {
	version, commit, date = v, c, d
}

// CLI holds the flags shared by every command.
type CLI struct {
	out, errOut io.Writer
	configPath  string
	verbose     bool
}

// New returns a CLI printing to out and errOut.
func New(out, errOut io.Writer) *CLI {
	return &CLI{out: out, errOut: errOut}
}

// Execute runs the command line with os.Args.
func Execute(ctx context.Context) error {
	return New(os.Stdout, os.Stderr).RootCommand().ExecuteContext(ctx)
}

// RootCommand builds the command tree.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "widgetboard",
		Short:        "A free-form widget board for the terminal",
		Long:         "widgetboard places dashboard widgets on a free-form canvas. Drag, resize and stack them with the mouse; edges snap to their neighbours.",
		Version:      version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Commands other than the TUI log to stderr.
			level, err := parseLevel("", c.verbose)
			if err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), newSlog(c.errOut, level)))
			return nil
		},
		RunE: c.runBoard,
	}
	root.SetOut(c.out)
	root.SetErr(c.errOut)
	root.SetVersionTemplate(fmt.Sprintf("widgetboard %s\ncommit: %s\nbuilt: %s\n", version, commit, date))

	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "path to config file (default: XDG search)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(c.replayCommand())
	root.AddCommand(c.widgetsCommand())
	root.AddCommand(c.themesCommand())
	root.AddCommand(c.benchCommand())
	return root
}

func (c *CLI) loadConfig() (*config.Config, error) {
	if c.configPath != "" {
		return config.LoadFromFile(c.configPath)
	}
	return config.Load()
}
