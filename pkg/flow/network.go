// Package flow solves the constrained matching problem by reduction to
// maximum bipartite matching over a unit-capacity flow network.
//
// # Reduction
//
// Every participant P contributes two nodes, send(P) and recv(P). The source
// feeds each send node with capacity 1 and each recv node drains into the
// sink with capacity 1, encoding "everyone sends exactly one gift and
// receives exactly one gift". For every ordered pair P≠Q that the
// configuration permits, a unit-capacity edge send(P)→recv(Q) is added.
// Self-loops are never added, so the derangement property holds structurally
// rather than by later rejection; the same is true of exclusions, whose
// edges simply do not exist.
//
// A maximum flow of value n (the participant count) saturates every source
// and sink edge, forcing exactly one saturated send→recv edge per
// participant on each side. Those edges decode directly into a legal
// permutation. A maximum flow below n proves no legal assignment exists, and
// the unsaturated source/sink edges name the blocked participants, the
// local witness the max-flow min-cut theorem provides.
package flow

import (
	"slices"

	"github.com/sleighlab/sleigh/pkg/match"
)

// Node indices within a network. The source and sink occupy fixed slots;
// participant i (by ascending ID) owns nodes 2+2i (send) and 3+2i (recv).
const (
	sourceNode = 0
	sinkNode   = 1
)

func sendNode(i int) int { return 2 + 2*i }
func recvNode(i int) int { return 3 + 2*i }

// edge is one directed arc in the residual graph. Edges are stored in pairs:
// the reverse edge of edges[k] is edges[k^1], with initial capacity 0.
type edge struct {
	to  int
	cap int
}

// Network is the flow network for one solve attempt. It is built fresh from
// a configuration by [Build], consumed by a single [Network.MaxFlow] call,
// and then read for decoding or DOT output. It is not safe for concurrent
// use and is not reusable across solves.
type Network struct {
	cfg   *match.Configuration
	n     int
	edges []edge
	adj   [][]int // node -> indices into edges
}

// Build constructs the flow network encoding "who may send to whom" for cfg.
// Construction is deterministic: the same configuration always yields the
// same node and edge structure. Edge construction is O(n²), acceptable
// because the network models a fully-connected candidate space that
// exclusions only prune.
func Build(cfg *match.Configuration) *Network {
	n := cfg.Len()
	nw := &Network{
		cfg: cfg,
		n:   n,
		adj: make([][]int, 2+2*n),
	}

	ids := cfg.Registry().IDs()
	slices.Sort(ids)

	for i := range ids {
		nw.addEdge(sourceNode, sendNode(i), 1)
		nw.addEdge(recvNode(i), sinkNode, 1)
	}

	for i, sender := range ids {
		for j, recipient := range ids {
			if !cfg.MaySend(sender, recipient) {
				continue
			}
			nw.addEdge(sendNode(i), recvNode(j), 1)
		}
	}

	return nw
}

// addEdge appends a forward edge with the given capacity and its paired
// reverse edge with capacity 0.
func (nw *Network) addEdge(from, to, capacity int) {
	nw.adj[from] = append(nw.adj[from], len(nw.edges))
	nw.edges = append(nw.edges, edge{to: to, cap: capacity})
	nw.adj[to] = append(nw.adj[to], len(nw.edges))
	nw.edges = append(nw.edges, edge{to: from, cap: 0})
}

// NodeCount returns the number of nodes: two per participant plus source and
// sink.
func (nw *Network) NodeCount() int { return 2 + 2*nw.n }

// EdgeCount returns the number of forward edges (reverse residual edges are
// not counted).
func (nw *Network) EdgeCount() int { return len(nw.edges) / 2 }

// flowOn returns the flow carried by the forward edge at index k.
// For unit capacities this is the capacity moved onto the reverse edge.
func (nw *Network) flowOn(k int) int { return nw.edges[k^1].cap }

// participant maps the participant slot i back to its ID. Slots are assigned
// in ascending ID order by Build, so this is the identity today; keeping the
// mapping in one place guards the decode logic against that changing.
func (nw *Network) participant(i int) match.ID { return match.ID(i) }
