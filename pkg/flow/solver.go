package flow

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/sleighlab/sleigh/pkg/match"
)

// InfeasibleError reports that no legal assignment exists for the
// configuration. It carries the participants touching unsaturated source and
// sink edges, tagged by the side they failed on.
//
// The diagnostic is a necessary local witness, not a complete explanation:
// if the minimum cut lies strictly between the send and recv layers (say a
// clique of mutually-excluding participants inside a larger group), the
// blocked lists identify the participants starved by it without naming the
// structural cause. Treat it as a debugging aid.
type InfeasibleError struct {
	// Flow is the maximum flow achieved, strictly less than Participants.
	Flow int
	// Participants is the participant count the flow needed to reach.
	Participants int
	// SendBlocked lists participants who cannot send to anyone permitted.
	SendBlocked []match.ID
	// ReceiveBlocked lists participants who cannot receive from anyone permitted.
	ReceiveBlocked []match.ID
}

// Error implements the error interface.
func (e *InfeasibleError) Error() string {
	return fmt.Sprintf("no legal assignment exists: matched %d of %d participants (%d send-blocked, %d receive-blocked)",
		e.Flow, e.Participants, len(e.SendBlocked), len(e.ReceiveBlocked))
}

// Describe renders one human-readable line per blocked participant, resolving
// IDs through reg. Lines are sorted for stable output.
func (e *InfeasibleError) Describe(reg *match.Registry) []string {
	var lines []string
	for _, id := range e.SendBlocked {
		lines = append(lines, fmt.Sprintf("%s is unable to send to anyone", reg.Name(id)))
	}
	for _, id := range e.ReceiveBlocked {
		lines = append(lines, fmt.Sprintf("%s is unable to receive from anyone", reg.Name(id)))
	}
	slices.Sort(lines)
	return lines
}

// Solver is the flow-network matching strategy. It terminates on every
// input: either with a legal permutation or with an [InfeasibleError]
// naming the blocked participants.
//
// The zero value is ready to use. Set Logger to narrate the solve; at debug
// level the post-solve network is dumped in Graphviz DOT form, which can be
// pasted into any DOT viewer to inspect the matching.
type Solver struct {
	Logger *log.Logger
}

// Name implements match.Solver.
func (s *Solver) Name() string { return "flow" }

// Solve implements match.Solver. It builds the network, runs Edmonds–Karp,
// and decodes a full flow into a permutation. By construction the decoded
// permutation is a derangement honoring every exclusion; the smart
// constructor run during decoding is a cheap consistency check, not a
// correctness requirement.
func (s *Solver) Solve(ctx context.Context, cfg *match.Configuration) (*match.Permutation, error) {
	nw := Build(cfg)
	flow, err := nw.MaxFlow(ctx)
	if err != nil {
		return nil, err
	}

	if s.Logger != nil {
		s.Logger.Debug("max-flow complete", "flow", flow, "participants", cfg.Len())
		s.Logger.Debugf("post-solve flow network (paste into a Graphviz viewer):\n%s",
			nw.DOT(DOTOptions{FlowOnly: true}))
	}

	if flow != cfg.Len() {
		return nil, nw.diagnose(flow)
	}
	return nw.decode()
}

// decode converts the saturated send→recv edges into a permutation.
func (nw *Network) decode() (*match.Permutation, error) {
	assignments := make([]match.Assignment, 0, nw.n)
	for i := 0; i < nw.n; i++ {
		for _, k := range nw.adj[sendNode(i)] {
			to := nw.edges[k].to
			if to == sourceNode || nw.flowOn(k) == 0 {
				continue
			}
			j := (to - 3) / 2
			assignments = append(assignments, match.Assignment{
				Sender:    nw.participant(i),
				Recipient: nw.participant(j),
			})
		}
	}
	return match.NewPermutation(assignments, nw.cfg.Registry())
}

// diagnose collects the participants on unsaturated source and sink edges.
func (nw *Network) diagnose(flow int) *InfeasibleError {
	e := &InfeasibleError{Flow: flow, Participants: nw.n}
	for _, k := range nw.adj[sourceNode] {
		if nw.edges[k].cap > 0 { // forward edge, no flow carried
			i := (nw.edges[k].to - 2) / 2
			e.SendBlocked = append(e.SendBlocked, nw.participant(i))
		}
	}
	for i := 0; i < nw.n; i++ {
		for _, k := range nw.adj[recvNode(i)] {
			if nw.edges[k].to == sinkNode && nw.edges[k].cap > 0 {
				e.ReceiveBlocked = append(e.ReceiveBlocked, nw.participant(i))
			}
		}
	}
	slices.Sort(e.SendBlocked)
	slices.Sort(e.ReceiveBlocked)
	return e
}

// label returns the display label for a node index, used by DOT output.
func (nw *Network) label(node int) string {
	switch node {
	case sourceNode:
		return "source"
	case sinkNode:
		return "sink"
	}
	i := (node - 2) / 2
	name := nw.cfg.Registry().Name(nw.participant(i))
	if node%2 == 0 {
		return name + " (send)"
	}
	return name + " (recv)"
}

// sanitizeLabel strips characters that would break quoted DOT identifiers.
func sanitizeLabel(s string) string {
	return strings.ReplaceAll(s, `"`, `'`)
}
