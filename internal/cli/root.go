package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package with values injected via
// ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the slidekit CLI and returns an error if any command fails.
//
// The function sets up the root command with all subcommands, configures
// logging based on the --verbose flag, and executes the command tree.
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "slidekit",
		Short:        "Slidekit lays out slide objects",
		Long:         `Slidekit is a CLI for geometric layout operations on slide decks: aligning, distributing, docking, and resizing objects, arranging them in grids, and swapping table content.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("slidekit %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newAlignCmd())
	root.AddCommand(newDistributeCmd())
	root.AddCommand(newDockCmd())
	root.AddCommand(newMatchCmd())
	root.AddCommand(newStretchCmd())
	root.AddCommand(newFillCmd())
	root.AddCommand(newResizeCmd())
	root.AddCommand(newArrangeCmd())
	root.AddCommand(newSwapCmd())
	root.AddCommand(newAnchorCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newServeCmd())

	return root.ExecuteContext(ctx)
}
