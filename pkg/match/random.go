package match

import (
	"context"
	"io"
	"math/rand/v2"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/sleighlab/sleigh/pkg/errors"
)

// RandomSolver finds a legal permutation by rejection sampling: shuffle a
// copy of the roster, zip it against the canonical order, and keep the first
// candidate that passes [Configuration.EnsureValid].
//
// This is the naive strategy the flow-network reduction exists to replace.
// Termination is not guaranteed: if the exclusions admit no legal
// derangement, or make them rare, the loop runs until MaxAttempts or context
// cancellation stops it. Prefer flow.Solver; keep this for small
// unconstrained groups and for comparison in tests.
type RandomSolver struct {
	// MaxAttempts caps the number of candidates tried. Zero means unbounded,
	// faithful to the strategy's original (and flawed) contract.
	MaxAttempts int

	// Rand is the randomness source. Nil uses the shared global source.
	Rand *rand.Rand

	// Logger receives a debug line per rejected candidate. Nil discards.
	Logger *log.Logger
}

// Name implements [Solver].
func (s *RandomSolver) Name() string { return "random" }

// Solve implements [Solver]. The context is checked between attempts, so
// cancellation bounds an otherwise unbounded search.
func (s *RandomSolver) Solve(ctx context.Context, cfg *Configuration) (*Permutation, error) {
	logger := s.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	shuffle := rand.Shuffle
	if s.Rand != nil {
		shuffle = s.Rand.Shuffle
	}

	ids := cfg.Registry().IDs()
	recipients := slices.Clone(ids)

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if s.MaxAttempts > 0 && attempt > s.MaxAttempts {
			return nil, errors.New(errors.ErrCodeAttemptsExhausted,
				"no valid permutation found after %d attempts", s.MaxAttempts)
		}

		shuffle(len(recipients), func(i, j int) {
			recipients[i], recipients[j] = recipients[j], recipients[i]
		})

		assignments := make([]Assignment, len(ids))
		for i, sender := range ids {
			assignments[i] = Assignment{Sender: sender, Recipient: recipients[i]}
		}

		perm, err := NewPermutation(assignments, cfg.Registry())
		if err == nil {
			err = cfg.EnsureValid(perm)
		}
		if err != nil {
			logger.Debug("rejected candidate", "attempt", attempt, "reason", errors.UserMessage(err))
			continue
		}

		logger.Debug("accepted candidate", "attempt", attempt)
		return perm, nil
	}
}
