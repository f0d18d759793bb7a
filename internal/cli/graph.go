package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sleighlab/sleigh/pkg/errors"
	"github.com/sleighlab/sleigh/pkg/flow"
	"github.com/sleighlab/sleigh/pkg/roster"
)

// Output formats for the graph command.
const (
	formatDOT = "dot"
	formatSVG = "svg"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	output string // output file path (stdout if empty)
	format string // dot or svg
	solved bool   // run max-flow first and show only flow-carrying edges
}

// newGraphCmd creates the graph command for inspecting the flow network.
func newGraphCmd() *cobra.Command {
	opts := graphOpts{format: formatDOT}

	cmd := &cobra.Command{
		Use:   "graph <roster>",
		Short: "Emit the compatibility flow network as DOT or SVG",
		Long: `Emit the flow network that encodes "who may send to whom" for a roster.

Without --solved the full compatibility network is shown: one send and one
recv node per participant, with an edge for every permitted pair. With
--solved the maximum flow is computed first and only flow-carrying edges
are drawn, which visualizes the matching itself (or, on an infeasible
roster, which source/sink edges went unsaturated).

Examples:
  sleigh graph roster.csv                       # DOT to stdout
  sleigh graph roster.csv --solved -f svg -o matching.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != formatDOT && opts.format != formatSVG {
				return errors.New(errors.ErrCodeInvalidFormat,
					"unknown format %q (expected %s or %s)", opts.format, formatDOT, formatSVG)
			}
			return runGraph(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot (default), svg")
	cmd.Flags().BoolVar(&opts.solved, "solved", false, "run max-flow and show only flow-carrying edges")

	return cmd
}

func runGraph(ctx context.Context, rosterPath string, opts graphOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := roster.Load(rosterPath, logger)
	if err != nil {
		return fmt.Errorf("load roster %s: %w", rosterPath, err)
	}

	nw := flow.Build(cfg)
	logger.Debug("built flow network", "nodes", nw.NodeCount(), "edges", nw.EdgeCount())

	if opts.solved {
		flowValue, err := nw.MaxFlow(ctx)
		if err != nil {
			return err
		}
		if flowValue < cfg.Len() {
			printWarning("Roster is infeasible: matched %d of %d participants", flowValue, cfg.Len())
		}
	}

	dot := nw.DOT(flow.DOTOptions{FlowOnly: opts.solved})

	var out []byte
	switch opts.format {
	case formatSVG:
		spinner := newSpinnerWithContext(ctx, "Rendering SVG...")
		spinner.Start()
		out, err = flow.RenderSVG(ctx, dot)
		if err != nil {
			spinner.StopWithError("Rendering failed")
			return fmt.Errorf("render SVG: %w", err)
		}
		spinner.Stop()
	default:
		out = []byte(dot)
	}

	if opts.output == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(opts.output, out, 0644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	printSuccess("Wrote %s", StyleHighlight.Render(opts.output))
	return nil
}
