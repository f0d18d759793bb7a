package match

import (
	"github.com/sleighlab/sleigh/pkg/errors"
)

// EnsureDerangement certifies that no assignment maps a sender to themselves.
// The first fixed point found is reported by name with ErrCodeNotDerangement.
// This is a pure predicate over already-constructed data.
func (c *Configuration) EnsureDerangement(p *Permutation) error {
	for a := range p.assignments {
		if a.Sender == a.Recipient {
			return errors.New(errors.ErrCodeNotDerangement,
				"%s is assigned to themselves", c.registry.Name(a.Sender))
		}
	}
	return nil
}

// EnsureExclusions certifies that no assignment crosses a forbidden send or
// receive edge. Every assignment is checked; the first violation found is
// reported with ErrCodeExclusionViolated.
func (c *Configuration) EnsureExclusions(p *Permutation) error {
	for a := range p.assignments {
		if c.SendExcluded(a.Sender, a.Recipient) {
			return errors.New(errors.ErrCodeExclusionViolated,
				"%s cannot send to %s", c.registry.Name(a.Sender), c.registry.Name(a.Recipient))
		}
		if c.ReceiveExcluded(a.Recipient, a.Sender) {
			return errors.New(errors.ErrCodeExclusionViolated,
				"%s cannot receive from %s", c.registry.Name(a.Recipient), c.registry.Name(a.Sender))
		}
	}
	return nil
}

// EnsureValid composes [Configuration.EnsureDerangement] and
// [Configuration.EnsureExclusions], short-circuiting on the first failure.
// It is the acceptance test inside the randomized search and doubles as a
// standalone checker for externally proposed assignments.
func (c *Configuration) EnsureValid(p *Permutation) error {
	if err := c.EnsureDerangement(p); err != nil {
		return err
	}
	return c.EnsureExclusions(p)
}
