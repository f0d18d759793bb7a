package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	sleigherrors "github.com/sleighlab/sleigh/pkg/errors"
	"github.com/sleighlab/sleigh/pkg/flow"
	"github.com/sleighlab/sleigh/pkg/match"
	"github.com/sleighlab/sleigh/pkg/notify"
	"github.com/sleighlab/sleigh/pkg/roster"
)

// Strategy names accepted by --strategy.
const (
	strategyFlow   = "flow"
	strategyRandom = "random"
)

// matchOpts holds the command-line flags for the match command.
type matchOpts struct {
	output   string // output root directory for notification files
	strategy string // matching strategy: flow or random
	attempts int    // attempt cap for the random strategy (0 = unbounded)
	dryRun   bool   // solve without writing notification files
}

// newMatchCmd creates the match command.
func newMatchCmd() *cobra.Command {
	opts := matchOpts{output: "./matchings", strategy: strategyFlow}

	cmd := &cobra.Command{
		Use:   "match <roster>",
		Short: "Compute a legal assignment and write notification files",
		Long: `Compute a legal gift assignment for the roster and write one notification
file per sender into a fresh timestamped run directory.

The default flow strategy always terminates: it either finds an assignment
or reports exactly which participants make one impossible. The random
strategy shuffles until a valid assignment appears and may run forever on
over-constrained rosters; use --attempts to bound it.

Examples:
  sleigh match roster.csv
  sleigh match roster.toml -o ./out --strategy random --attempts 10000
  sleigh match roster.csv --dry-run -v`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output root directory")
	cmd.Flags().StringVarP(&opts.strategy, "strategy", "s", opts.strategy, "matching strategy: flow (default), random")
	cmd.Flags().IntVar(&opts.attempts, "attempts", 0, "attempt cap for the random strategy (0 = unbounded)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "solve without writing notification files")

	return cmd
}

// newSolver maps a strategy name to its implementation.
func newSolver(ctx context.Context, name string) (match.Solver, error) {
	logger := loggerFromContext(ctx)
	switch name {
	case strategyFlow:
		return &flow.Solver{Logger: logger}, nil
	case strategyRandom:
		return &match.RandomSolver{Logger: logger}, nil
	}
	return nil, sleigherrors.New(sleigherrors.ErrCodeInvalidInput,
		"unknown strategy %q (expected %s or %s)", name, strategyFlow, strategyRandom)
}

func runMatch(ctx context.Context, rosterPath string, opts matchOpts) error {
	logger := loggerFromContext(ctx)

	solver, err := newSolver(ctx, opts.strategy)
	if err != nil {
		return err
	}
	if rs, ok := solver.(*match.RandomSolver); ok {
		rs.MaxAttempts = opts.attempts
	}

	cfg, err := roster.Load(rosterPath, logger)
	if err != nil {
		return fmt.Errorf("load roster %s: %w", rosterPath, err)
	}
	logger.Info("loaded roster", "participants", cfg.Len())
	for _, id := range cfg.Registry().IDs() {
		logger.Debug("participant", "name", cfg.Registry().Name(id),
			"cannot_send_to", len(cfg.CannotSendTo(id)),
			"cannot_receive_from", len(cfg.CannotReceiveFrom(id)))
	}

	prog := newProgress(logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Matching %d participants (%s)...", cfg.Len(), solver.Name()))
	spinner.Start()

	perm, err := solver.Solve(ctx, cfg)
	if err != nil {
		spinner.StopWithError("Matching failed")
		var inf *flow.InfeasibleError
		if errors.As(err, &inf) {
			for _, line := range inf.Describe(cfg.Registry()) {
				printDetail("%s", line)
			}
		}
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Matched %d participants", perm.Len()))

	if opts.dryRun {
		printSuccess("Found a valid assignment for %s", StyleHighlight.Render(fmt.Sprintf("%d participants", perm.Len())))
		printInfo("Dry run, no notification files written")
		return nil
	}

	runDir, err := notify.Write(perm, cfg.Registry(), opts.output)
	if err != nil {
		return fmt.Errorf("write notifications: %w", err)
	}

	printSuccess("Wrote %s notification files", StyleHighlight.Render(fmt.Sprintf("%d", perm.Len())))
	printDetail("%s", runDir)
	return nil
}
