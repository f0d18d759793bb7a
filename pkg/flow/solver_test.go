package flow

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/sleighlab/sleigh/pkg/match"
)

func lookup(t *testing.T, cfg *match.Configuration, name string) match.ID {
	t.Helper()
	id, ok := cfg.Registry().Lookup(name)
	if !ok {
		t.Fatalf("unknown participant %q", name)
	}
	return id
}

func TestSolverForcedAssignment(t *testing.T) {
	// Of the two derangements on three participants, the exclusions rule out
	// the cycle through Alice→Bob, so the solver has exactly one answer.
	cfg := testConfig(t, []string{"Alice", "Bob", "Charlie"},
		map[string][]string{"Alice": {"Bob"}},
		map[string][]string{"Charlie": {"Bob"}},
	)

	perm, err := (&Solver{}).Solve(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if err := cfg.EnsureValid(perm); err != nil {
		t.Fatalf("Solve() returned invalid permutation: %v", err)
	}

	want := map[string]string{"Alice": "Charlie", "Bob": "Alice", "Charlie": "Bob"}
	for sender, recipient := range want {
		got, _ := perm.RecipientOf(lookup(t, cfg, sender))
		if got != lookup(t, cfg, recipient) {
			t.Errorf("RecipientOf(%s) = %d, want %s", sender, got, recipient)
		}
	}
}

func TestSolverInfeasibleSendBlocked(t *testing.T) {
	// Alice cannot send to anyone.
	cfg := testConfig(t, []string{"Alice", "Bob", "Charlie"},
		map[string][]string{"Alice": {"Bob", "Charlie"}}, nil)

	_, err := (&Solver{}).Solve(context.Background(), cfg)
	var inf *InfeasibleError
	if !errors.As(err, &inf) {
		t.Fatalf("Solve() error = %v, want *InfeasibleError", err)
	}

	if inf.Flow != 2 || inf.Participants != 3 {
		t.Errorf("Flow = %d of %d, want 2 of 3", inf.Flow, inf.Participants)
	}
	if want := []match.ID{lookup(t, cfg, "Alice")}; !slices.Equal(inf.SendBlocked, want) {
		t.Errorf("SendBlocked = %v, want %v", inf.SendBlocked, want)
	}
	if len(inf.ReceiveBlocked) != 1 {
		t.Errorf("ReceiveBlocked = %v, want exactly one starved recipient", inf.ReceiveBlocked)
	}
}

func TestSolverInfeasibleBothSides(t *testing.T) {
	// David cannot send to anyone and Alice cannot receive from anyone, so
	// the diagnostic must tag one participant on each side.
	cfg := testConfig(t, []string{"Alice", "Bob", "Charlie", "David"},
		map[string][]string{"David": {"Alice", "Bob", "Charlie"}},
		map[string][]string{"Alice": {"Bob", "Charlie"}},
	)

	_, err := (&Solver{}).Solve(context.Background(), cfg)
	var inf *InfeasibleError
	if !errors.As(err, &inf) {
		t.Fatalf("Solve() error = %v, want *InfeasibleError", err)
	}

	if inf.Flow != 3 {
		t.Errorf("Flow = %d, want 3", inf.Flow)
	}
	if want := []match.ID{lookup(t, cfg, "David")}; !slices.Equal(inf.SendBlocked, want) {
		t.Errorf("SendBlocked = %v, want %v", inf.SendBlocked, want)
	}
	if want := []match.ID{lookup(t, cfg, "Alice")}; !slices.Equal(inf.ReceiveBlocked, want) {
		t.Errorf("ReceiveBlocked = %v, want %v", inf.ReceiveBlocked, want)
	}

	wantLines := []string{
		"Alice is unable to receive from anyone",
		"David is unable to send to anyone",
	}
	if got := inf.Describe(cfg.Registry()); !slices.Equal(got, wantLines) {
		t.Errorf("Describe() = %v, want %v", got, wantLines)
	}
}

func TestSolverUnconstrained(t *testing.T) {
	cfg := testConfig(t, []string{"Alice", "Bob", "Charlie", "David"}, nil, nil)

	perm, err := (&Solver{}).Solve(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if err := cfg.EnsureValid(perm); err != nil {
		t.Errorf("Solve() returned invalid permutation: %v", err)
	}
}

func TestSolverName(t *testing.T) {
	if got := (&Solver{}).Name(); got != "flow" {
		t.Errorf("Name() = %q, want %q", got, "flow")
	}
}

// countValid brute-forces every permutation of the roster and counts the
// ones that pass EnsureValid.
func countValid(t *testing.T, cfg *match.Configuration) int {
	t.Helper()

	ids := cfg.Registry().IDs()
	count := 0
	var permute func(recipients []match.ID, k int)
	permute = func(recipients []match.ID, k int) {
		if k == len(recipients) {
			assignments := make([]match.Assignment, len(ids))
			for i, sender := range ids {
				assignments[i] = match.Assignment{Sender: sender, Recipient: recipients[i]}
			}
			perm, err := match.NewPermutation(assignments, cfg.Registry())
			if err == nil && cfg.EnsureValid(perm) == nil {
				count++
			}
			return
		}
		for i := k; i < len(recipients); i++ {
			recipients[k], recipients[i] = recipients[i], recipients[k]
			permute(recipients, k+1)
			recipients[k], recipients[i] = recipients[i], recipients[k]
		}
	}
	permute(slices.Clone(ids), 0)
	return count
}

// The solver must agree with exhaustive search on feasibility for every
// randomly generated exclusion set, and produce a valid permutation whenever
// one exists.
func TestSolverMatchesExhaustiveSearch(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	const n = 5

	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("P%d", i)
	}

	for trial := 0; trial < 50; trial++ {
		cannotSend := make(map[string][]string)
		cannotReceive := make(map[string][]string)
		for _, a := range names {
			for _, b := range names {
				if a == b {
					continue
				}
				switch rng.IntN(10) {
				case 0, 1:
					cannotSend[a] = append(cannotSend[a], b)
				case 2:
					cannotReceive[a] = append(cannotReceive[a], b)
				}
			}
		}
		cfg := testConfig(t, names, cannotSend, cannotReceive)

		perm, err := (&Solver{}).Solve(context.Background(), cfg)
		valid := countValid(t, cfg)

		switch {
		case valid > 0 && err != nil:
			t.Errorf("trial %d: Solve() error = %v, but %d valid permutations exist", trial, err, valid)
		case valid == 0 && err == nil:
			t.Errorf("trial %d: Solve() succeeded, but exhaustive search found no valid permutation", trial)
		case err == nil:
			if verr := cfg.EnsureValid(perm); verr != nil {
				t.Errorf("trial %d: Solve() returned invalid permutation: %v", trial, verr)
			}
		default:
			var inf *InfeasibleError
			if !errors.As(err, &inf) {
				t.Errorf("trial %d: infeasible error type = %T, want *InfeasibleError", trial, err)
			}
		}
	}
}
