package match

import "fmt"

// ID is a stable integer handle for a participant within a [Registry].
// IDs are dense indices starting at 0, which lets callers use them directly
// as array offsets (the flow network relies on this).
type ID int

// Participant is one member of the gift exchange. Identity is the display
// name alone; the remaining attributes are opaque to the matching core and
// are only carried through to notification output.
type Participant struct {
	Name      string // unique display name, used as identity
	Contact   string // chat/contact handle
	Delivery  string // mailing or delivery instructions
	Interests string // free-text gift interests
}

// String returns the participant's name and contact handle.
func (p Participant) String() string {
	if p.Contact == "" {
		return p.Name
	}
	return fmt.Sprintf("%s (%s)", p.Name, p.Contact)
}

// Registry is the sole owner of participant records. It assigns each
// distinct name a stable [ID]; all other structures reference participants
// by ID and resolve records through the registry.
//
// Two participants with the same name are indistinguishable: Add returns the
// existing ID and keeps the first record. This mirrors the sign-up form the
// roster comes from, where names are the unique key.
//
// The zero value is not usable - use [NewRegistry]. A Registry is effectively
// immutable once loading finishes and may be shared read-only across solve
// attempts without synchronization.
type Registry struct {
	participants []Participant
	byName       map[string]ID
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]ID)}
}

// Add registers a participant and returns its ID. If a participant with the
// same name already exists, the existing ID is returned and the new record
// is discarded.
func (r *Registry) Add(p Participant) ID {
	if id, ok := r.byName[p.Name]; ok {
		return id
	}
	id := ID(len(r.participants))
	r.participants = append(r.participants, p)
	r.byName[p.Name] = id
	return id
}

// Lookup returns the ID registered for name, and whether it exists.
func (r *Registry) Lookup(name string) (ID, bool) {
	id, ok := r.byName[name]
	return id, ok
}

// Get returns the participant record for id.
// It panics if id was not issued by this registry, which indicates a
// programming error rather than bad input.
func (r *Registry) Get(id ID) Participant {
	return r.participants[id]
}

// Name returns the display name for id.
func (r *Registry) Name(id ID) string {
	return r.participants[id].Name
}

// Len returns the number of registered participants.
func (r *Registry) Len() int { return len(r.participants) }

// IDs returns every issued ID in ascending order.
func (r *Registry) IDs() []ID {
	ids := make([]ID, len(r.participants))
	for i := range ids {
		ids[i] = ID(i)
	}
	return ids
}
