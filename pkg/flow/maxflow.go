package flow

import "context"

// MaxFlow computes the maximum flow from source to sink using Edmonds–Karp:
// breadth-first augmenting paths over the residual graph. With unit
// capacities every augmenting path moves exactly one unit, so the loop runs
// at most n+1 times and the returned value is an integer in [0, n].
//
// MaxFlow mutates the residual capacities in place and must be called at
// most once per network. The context is checked between augmenting paths;
// cancellation returns the flow found so far along with ctx.Err().
func (nw *Network) MaxFlow(ctx context.Context) (int, error) {
	total := 0
	// parent[v] is the edge index used to reach v in the current BFS.
	parent := make([]int, nw.NodeCount())

	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		if !nw.augmentingPath(parent) {
			return total, nil
		}

		// Walk sink→source decrementing forward capacity and incrementing
		// the paired reverse edge.
		bottleneck := nw.edges[parent[sinkNode]].cap
		for v := sinkNode; v != sourceNode; {
			k := parent[v]
			if c := nw.edges[k].cap; c < bottleneck {
				bottleneck = c
			}
			v = nw.edges[k^1].to
		}
		for v := sinkNode; v != sourceNode; {
			k := parent[v]
			nw.edges[k].cap -= bottleneck
			nw.edges[k^1].cap += bottleneck
			v = nw.edges[k^1].to
		}
		total += bottleneck
	}
}

// augmentingPath runs a BFS from source over edges with remaining capacity
// and records the edge used to reach each node in parent. It reports whether
// the sink was reached.
func (nw *Network) augmentingPath(parent []int) bool {
	for i := range parent {
		parent[i] = -1
	}

	queue := []int{sourceNode}
	visited := make([]bool, nw.NodeCount())
	visited[sourceNode] = true

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, k := range nw.adj[u] {
			e := nw.edges[k]
			if e.cap == 0 || visited[e.to] {
				continue
			}
			visited[e.to] = true
			parent[e.to] = k
			if e.to == sinkNode {
				return true
			}
			queue = append(queue, e.to)
		}
	}
	return false
}
