// Package match implements the constrained gift-exchange matching core.
//
// A matching assigns every participant exactly one other participant to send
// a gift to, subject to two constraints: nobody is assigned to themselves
// (the result is a derangement), and pairwise directed exclusions of the
// form "X refuses to send to Y" and "X refuses to receive from Y" are
// honored.
//
// # Data Model
//
// Participants are identified by display name and owned by a [Registry],
// which hands out stable integer [ID] values. Every other structure
// (exclusion maps, assignments, flow-network labels) references participants
// by ID instead of sharing record pointers. A [Configuration] aggregates the
// registry with both exclusion maps and is immutable after construction.
//
// A [Permutation] is a set of (sender, recipient) [Assignment] pairs whose
// smart constructor certifies it is exactly a bijection over the
// participants. The validators on Configuration additionally certify the
// derangement and exclusion properties.
//
// # Strategies
//
// Two interchangeable [Solver] implementations produce a legal permutation:
//
//   - flow.Solver (package flow) reduces the problem to maximum bipartite
//     matching over a unit-capacity flow network. It terminates on every
//     input and diagnoses which participants are blocked when no legal
//     assignment exists. Prefer it.
//   - [RandomSolver] repeatedly shuffles the roster and validates the result.
//     It has no termination guarantee and is retained as the documented
//     inferior fallback for small unconstrained groups.
package match
