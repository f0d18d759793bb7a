package match

import (
	"github.com/sleighlab/sleigh/pkg/errors"
)

// Configuration is the aggregate input to the solver: the participant
// registry plus both directed exclusion maps. It is constructed once at load
// time and never mutated afterwards; both matching strategies consume it
// read-only.
//
// Invariants established by [NewConfiguration]:
//   - every participant has an entry (possibly empty) in both maps
//   - the maps reference only IDs issued by the registry
type Configuration struct {
	registry          *Registry
	cannotSendTo      map[ID]map[ID]bool
	cannotReceiveFrom map[ID]map[ID]bool
}

// NewConfiguration builds a Configuration from a registry and the raw
// exclusion lists. Missing entries are normalized to empty sets; IDs outside
// the registry are rejected with ErrCodeParticipantNotFound.
func NewConfiguration(reg *Registry, cannotSendTo, cannotReceiveFrom map[ID][]ID) (*Configuration, error) {
	c := &Configuration{
		registry:          reg,
		cannotSendTo:      make(map[ID]map[ID]bool, reg.Len()),
		cannotReceiveFrom: make(map[ID]map[ID]bool, reg.Len()),
	}

	normalize := func(raw map[ID][]ID, dst map[ID]map[ID]bool, kind string) error {
		for _, id := range reg.IDs() {
			dst[id] = make(map[ID]bool)
		}
		for id, excluded := range raw {
			set, ok := dst[id]
			if !ok {
				return errors.New(errors.ErrCodeParticipantNotFound,
					"%s exclusion references unknown participant ID %d", kind, id)
			}
			for _, other := range excluded {
				if int(other) < 0 || int(other) >= reg.Len() {
					return errors.New(errors.ErrCodeParticipantNotFound,
						"%s exclusion for %s references unknown participant ID %d", kind, reg.Name(id), other)
				}
				set[other] = true
			}
		}
		return nil
	}

	if err := normalize(cannotSendTo, c.cannotSendTo, "send"); err != nil {
		return nil, err
	}
	if err := normalize(cannotReceiveFrom, c.cannotReceiveFrom, "receive"); err != nil {
		return nil, err
	}
	return c, nil
}

// Registry returns the participant registry backing this configuration.
func (c *Configuration) Registry() *Registry { return c.registry }

// Len returns the number of participants.
func (c *Configuration) Len() int { return c.registry.Len() }

// SendExcluded reports whether sender refuses to send to recipient.
func (c *Configuration) SendExcluded(sender, recipient ID) bool {
	return c.cannotSendTo[sender][recipient]
}

// ReceiveExcluded reports whether recipient refuses to receive from sender.
func (c *Configuration) ReceiveExcluded(recipient, sender ID) bool {
	return c.cannotReceiveFrom[recipient][sender]
}

// MaySend reports whether the directed pair sender→recipient is permitted:
// the pair is distinct and excluded in neither direction. This is the single
// predicate the flow network is built from.
func (c *Configuration) MaySend(sender, recipient ID) bool {
	if sender == recipient {
		return false
	}
	return !c.SendExcluded(sender, recipient) && !c.ReceiveExcluded(recipient, sender)
}

// CannotSendTo returns the IDs that id refuses to send to.
// The order is unspecified.
func (c *Configuration) CannotSendTo(id ID) []ID {
	return setToSlice(c.cannotSendTo[id])
}

// CannotReceiveFrom returns the IDs that id refuses to receive from.
// The order is unspecified.
func (c *Configuration) CannotReceiveFrom(id ID) []ID {
	return setToSlice(c.cannotReceiveFrom[id])
}

func setToSlice(set map[ID]bool) []ID {
	if len(set) == 0 {
		return nil
	}
	ids := make([]ID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	return ids
}
