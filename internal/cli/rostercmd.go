package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sleighlab/sleigh/pkg/roster"
)

// newRosterCmd creates the roster command for listing and browsing rosters.
func newRosterCmd() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "roster <roster>",
		Short: "List or interactively browse a roster",
		Long: `List a roster's participants together with their exclusion counts.

With --interactive an arrow-key browser opens instead, showing each
participant's contact info, interests, and full exclusion lists.

Examples:
  sleigh roster roster.csv
  sleigh roster roster.toml --interactive`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoster(cmd.Context(), args[0], interactive)
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse the roster interactively")

	return cmd
}

func runRoster(ctx context.Context, rosterPath string, interactive bool) error {
	logger := loggerFromContext(ctx)

	cfg, err := roster.Load(rosterPath, logger)
	if err != nil {
		return fmt.Errorf("load roster %s: %w", rosterPath, err)
	}

	if interactive {
		return browseRoster(cfg)
	}

	fmt.Println(StyleTitle.Render(fmt.Sprintf("%d participants", cfg.Len())))
	for _, id := range cfg.Registry().IDs() {
		p := cfg.Registry().Get(id)
		line := StyleValue.Render(p.Name)
		if p.Contact != "" {
			line += " " + StyleDim.Render("("+p.Contact+")")
		}
		fmt.Println("  " + line)
		if n := len(cfg.CannotSendTo(id)); n > 0 {
			printDetail("  won't send to %d participant(s)", n)
		}
		if n := len(cfg.CannotReceiveFrom(id)); n > 0 {
			printDetail("  won't receive from %d participant(s)", n)
		}
	}
	return nil
}
