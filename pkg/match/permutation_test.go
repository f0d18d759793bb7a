package match

import (
	"testing"

	"github.com/sleighlab/sleigh/pkg/errors"
)

// testRegistry builds a registry with the given names in order.
func testRegistry(t *testing.T, names ...string) *Registry {
	t.Helper()
	reg := NewRegistry()
	for _, name := range names {
		reg.Add(Participant{Name: name})
	}
	return reg
}

func TestNewPermutation(t *testing.T) {
	reg := testRegistry(t, "Alice", "Bob", "Charlie")

	perm, err := NewPermutation([]Assignment{
		{Sender: 0, Recipient: 1},
		{Sender: 1, Recipient: 2},
		{Sender: 2, Recipient: 0},
	}, reg)
	if err != nil {
		t.Fatalf("NewPermutation() error = %v", err)
	}

	if perm.Len() != 3 {
		t.Errorf("Len() = %d, want 3", perm.Len())
	}
	if !perm.Contains(Assignment{Sender: 0, Recipient: 1}) {
		t.Error("Contains(0→1) = false, want true")
	}
	if perm.Contains(Assignment{Sender: 0, Recipient: 2}) {
		t.Error("Contains(0→2) = true, want false")
	}
}

func TestNewPermutationInvalid(t *testing.T) {
	reg := testRegistry(t, "Alice", "Bob", "Charlie")

	tests := []struct {
		name        string
		assignments []Assignment
	}{
		{
			name: "too few assignments",
			assignments: []Assignment{
				{Sender: 0, Recipient: 1},
				{Sender: 1, Recipient: 2},
			},
		},
		{
			name: "duplicate sender",
			assignments: []Assignment{
				{Sender: 0, Recipient: 1},
				{Sender: 0, Recipient: 2},
				{Sender: 2, Recipient: 0},
			},
		},
		{
			name: "duplicate recipient",
			assignments: []Assignment{
				{Sender: 0, Recipient: 1},
				{Sender: 1, Recipient: 1},
				{Sender: 2, Recipient: 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPermutation(tt.assignments, reg)
			if err == nil {
				t.Fatal("NewPermutation() error = nil, want count mismatch")
			}
			if !errors.Is(err, errors.ErrCodeInvalidPermutation) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidPermutation)
			}
			if !errors.Recoverable(err) {
				t.Error("Recoverable() = false, want true")
			}
		})
	}
}

func TestPermutationAssignmentsSorted(t *testing.T) {
	reg := testRegistry(t, "Alice", "Bob", "Charlie")
	perm, err := NewPermutation([]Assignment{
		{Sender: 2, Recipient: 0},
		{Sender: 0, Recipient: 1},
		{Sender: 1, Recipient: 2},
	}, reg)
	if err != nil {
		t.Fatalf("NewPermutation() error = %v", err)
	}

	got := perm.Assignments()
	for i := 1; i < len(got); i++ {
		if got[i-1].Sender >= got[i].Sender {
			t.Errorf("Assignments() not sorted by sender: %v", got)
		}
	}
}

func TestPermutationRecipientOf(t *testing.T) {
	reg := testRegistry(t, "Alice", "Bob")
	perm, err := NewPermutation([]Assignment{
		{Sender: 0, Recipient: 1},
		{Sender: 1, Recipient: 0},
	}, reg)
	if err != nil {
		t.Fatalf("NewPermutation() error = %v", err)
	}

	got, ok := perm.RecipientOf(0)
	if !ok || got != 1 {
		t.Errorf("RecipientOf(0) = (%d, %v), want (1, true)", got, ok)
	}
}

// Bijection property: any successfully constructed permutation has every
// participant exactly once as sender and exactly once as recipient.
func TestPermutationBijection(t *testing.T) {
	reg := testRegistry(t, "Alice", "Bob", "Charlie", "David")
	perm, err := NewPermutation([]Assignment{
		{Sender: 0, Recipient: 2},
		{Sender: 1, Recipient: 3},
		{Sender: 2, Recipient: 1},
		{Sender: 3, Recipient: 0},
	}, reg)
	if err != nil {
		t.Fatalf("NewPermutation() error = %v", err)
	}

	senders := make(map[ID]int)
	recipients := make(map[ID]int)
	for _, a := range perm.Assignments() {
		senders[a.Sender]++
		recipients[a.Recipient]++
	}
	for _, id := range reg.IDs() {
		if senders[id] != 1 {
			t.Errorf("participant %d appears %d times as sender, want 1", id, senders[id])
		}
		if recipients[id] != 1 {
			t.Errorf("participant %d appears %d times as recipient, want 1", id, recipients[id])
		}
	}
}
