package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/sleighlab/sleigh/pkg/buildinfo"
)

// appName is the application name used for display and output paths.
const appName = "sleigh"

// Execute runs the sleigh CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (match, check,
// graph, roster, completion), configures logging based on the --verbose
// flag, and executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "Sleigh assigns gift-exchange matches under exclusion constraints",
		Long: `Sleigh assigns every member of a gift exchange exactly one other member to
send a gift to. Nobody draws themselves, and per-person "won't send to" /
"won't receive from" exclusions are honored. Matching reduces the problem
to maximum bipartite matching over a flow network, so an impossible roster
is reported definitively instead of looping forever.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newMatchCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newGraphCmd())
	root.AddCommand(newRosterCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
