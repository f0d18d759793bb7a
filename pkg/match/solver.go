package match

import "context"

// Solver constructs a legal permutation for a configuration.
//
// Implementations must return either a permutation that passes
// [Configuration.EnsureValid], or an error describing why none was produced.
// The specific permutation returned among possibly-many legal ones is
// implementation-defined and need not be stable across runs.
//
// The context is checked between units of work (augmenting paths, shuffle
// attempts); a cancelled context aborts the solve with ctx.Err().
type Solver interface {
	// Name identifies the strategy (e.g., "flow", "random") for CLI
	// selection and log output.
	Name() string

	// Solve computes a legal assignment for cfg.
	Solve(ctx context.Context, cfg *Configuration) (*Permutation, error)
}
