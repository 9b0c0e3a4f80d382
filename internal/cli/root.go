package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the localcolor CLI and returns an error if any command fails.
//
// Logging defaults to info level on stderr; --verbose (-v) switches to debug
// and traces every reveal. The logger travels through the command context.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "localcolor",
		Short:        "localcolor simulates local coloring algorithms on a revealed grid",
		Long: `localcolor drives online and dynamic-local graph-coloring strategies over
a grid whose cells are revealed one at a time, the way a distributed system
would grow a colored structure without global coordination.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.AddCommand(newRunCmd())

	return root.ExecuteContext(ctx)
}
