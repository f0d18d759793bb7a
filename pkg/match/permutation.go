package match

import (
	"slices"

	"github.com/sleighlab/sleigh/pkg/errors"
)

// Assignment is an ordered (sender, recipient) pair. In a valid result the
// sender never equals the recipient. Assignments are comparable and can be
// used directly as map keys.
type Assignment struct {
	Sender    ID
	Recipient ID
}

// Permutation is a set of assignments certified to be exactly a bijection
// from participants to participants. Use [NewPermutation] to construct one;
// the zero value is not usable.
//
// A Permutation is a permutation in the mathematical sense only. Whether it
// is also a derangement satisfying the exclusion constraints is checked
// separately by [Configuration.EnsureValid].
type Permutation struct {
	assignments map[Assignment]bool
}

// NewPermutation certifies that assignments form a bijection over the
// registry's participants and returns the resulting Permutation.
//
// Three conditions are checked, and construction fails on the first
// discrepancy rather than dropping or deduplicating entries:
//  1. the assignment count equals the participant count
//  2. the distinct senders cover every participant exactly once
//  3. the distinct recipients cover every participant exactly once
//
// Failures carry ErrCodeInvalidPermutation and are always recoverable: they
// signal "try a different candidate", never a fatal condition.
func NewPermutation(assignments []Assignment, reg *Registry) (*Permutation, error) {
	n := reg.Len()
	if len(assignments) != n {
		return nil, errors.New(errors.ErrCodeInvalidPermutation,
			"number of assignments (%d) does not match number of participants (%d)", len(assignments), n)
	}

	senders := make(map[ID]bool, n)
	recipients := make(map[ID]bool, n)
	set := make(map[Assignment]bool, n)
	for _, a := range assignments {
		senders[a.Sender] = true
		recipients[a.Recipient] = true
		set[a] = true
	}

	if len(senders) != n {
		return nil, errors.New(errors.ErrCodeInvalidPermutation,
			"number of distinct senders (%d) does not match number of participants (%d)", len(senders), n)
	}
	if len(recipients) != n {
		return nil, errors.New(errors.ErrCodeInvalidPermutation,
			"number of distinct recipients (%d) does not match number of participants (%d)", len(recipients), n)
	}

	return &Permutation{assignments: set}, nil
}

// Len returns the number of assignments.
func (p *Permutation) Len() int { return len(p.assignments) }

// Contains reports whether the permutation includes the given assignment.
func (p *Permutation) Contains(a Assignment) bool { return p.assignments[a] }

// Assignments returns the assignments sorted by sender ID.
// Sorting makes output and iteration deterministic even though the
// underlying representation is a set.
func (p *Permutation) Assignments() []Assignment {
	out := make([]Assignment, 0, len(p.assignments))
	for a := range p.assignments {
		out = append(out, a)
	}
	slices.SortFunc(out, func(a, b Assignment) int { return int(a.Sender) - int(b.Sender) })
	return out
}

// RecipientOf returns the recipient assigned to sender, and whether one
// exists. For a certified Permutation exactly one always exists.
func (p *Permutation) RecipientOf(sender ID) (ID, bool) {
	for a := range p.assignments {
		if a.Sender == sender {
			return a.Recipient, true
		}
	}
	return 0, false
}
