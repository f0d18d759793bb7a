package flow

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// DOTOptions configures Graphviz DOT output for a network.
type DOTOptions struct {
	// FlowOnly restricts output to edges carrying flow. Only meaningful
	// after [Network.MaxFlow] has run; beforehand no edge carries flow and
	// the output is just source and sink.
	FlowOnly bool
}

// DOT renders the network in Graphviz DOT format. Before a solve this is the
// full compatibility network; after a solve, edges carrying flow are drawn
// bold so the matching stands out, and FlowOnly hides everything else.
//
// The resulting string can be rendered with [RenderSVG] or pasted into any
// DOT viewer.
func (nw *Network) DOT(opts DOTOptions) string {
	var buf bytes.Buffer
	buf.WriteString("digraph flownet {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  \"source\" [fillcolor=lightgrey];\n")
	buf.WriteString("  \"sink\" [fillcolor=lightgrey];\n")
	buf.WriteString("\n")

	for k := 0; k < len(nw.edges); k += 2 {
		from := nw.edges[k^1].to
		to := nw.edges[k].to
		carried := nw.flowOn(k)
		if opts.FlowOnly && carried == 0 {
			continue
		}
		attrs := ""
		if carried > 0 {
			attrs = " [style=bold, color=\"#2e7d32\"]"
		}
		fmt.Fprintf(&buf, "  %q -> %q%s;\n",
			sanitizeLabel(nw.label(from)), sanitizeLabel(nw.label(to)), attrs)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
