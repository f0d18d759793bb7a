package match

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/sleighlab/sleigh/pkg/errors"
)

func TestRandomSolverSolve(t *testing.T) {
	cfg := testConfig(t, []string{"Alice", "Bob", "Charlie", "David"}, nil, nil)

	solver := &RandomSolver{
		MaxAttempts: 1000,
		Rand:        rand.New(rand.NewPCG(1, 2)),
	}
	perm, err := solver.Solve(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if err := cfg.EnsureValid(perm); err != nil {
		t.Errorf("Solve() returned invalid permutation: %v", err)
	}
}

func TestRandomSolverRespectsExclusions(t *testing.T) {
	// The only derangements of three participants are the two 3-cycles;
	// excluding Alice→Bob leaves exactly one, so the result is forced.
	cfg := testConfig(t, []string{"Alice", "Bob", "Charlie"},
		map[string][]string{"Alice": {"Bob"}}, nil)

	solver := &RandomSolver{
		MaxAttempts: 1000,
		Rand:        rand.New(rand.NewPCG(3, 4)),
	}
	perm, err := solver.Solve(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}

	alice, _ := cfg.Registry().Lookup("Alice")
	charlie, _ := cfg.Registry().Lookup("Charlie")
	if got, _ := perm.RecipientOf(alice); got != charlie {
		t.Errorf("RecipientOf(Alice) = %d, want Charlie (%d)", got, charlie)
	}
}

func TestRandomSolverAttemptsExhausted(t *testing.T) {
	// Two participants with a send exclusion admit no derangement at all.
	cfg := testConfig(t, []string{"Alice", "Bob"},
		map[string][]string{"Alice": {"Bob"}}, nil)

	solver := &RandomSolver{MaxAttempts: 25}
	_, err := solver.Solve(context.Background(), cfg)
	if !errors.Is(err, errors.ErrCodeAttemptsExhausted) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeAttemptsExhausted)
	}
}

func TestRandomSolverContextCancelled(t *testing.T) {
	cfg := testConfig(t, []string{"Alice", "Bob"},
		map[string][]string{"Alice": {"Bob"}}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Unbounded attempts; only the context stops the loop.
	solver := &RandomSolver{}
	_, err := solver.Solve(ctx, cfg)
	if err != context.Canceled {
		t.Errorf("Solve() error = %v, want context.Canceled", err)
	}
}

func TestRandomSolverName(t *testing.T) {
	if got := (&RandomSolver{}).Name(); got != "random" {
		t.Errorf("Name() = %q, want %q", got, "random")
	}
}
