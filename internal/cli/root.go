// Package cli provides the command-line interface for tracker.
package cli

import (
	"github.com/ksuda/tracker/internal/app"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command for tracker.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "tracker",
		Short: "Track short text tasks from the command line",
		Long: `tracker is a CLI for tracking short text tasks.

Tasks live in a single JSON file next to where you run the command
(override with TRACKER_STORE or a .tracker.toml file) and move between
the statuses todo, in-progress and done.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
	}

	root.AddCommand(
		newAddCommand(c),
		newUpdateCommand(c),
		newDeleteCommand(c),
		newListCommand(c),
		newMarkInProgressCommand(c),
		newMarkDoneCommand(c),
	)

	return root
}
