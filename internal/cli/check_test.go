package cli

import (
	"strings"
	"testing"

	"github.com/sleighlab/sleigh/pkg/errors"
	"github.com/sleighlab/sleigh/pkg/match"
)

func checkRegistry(t *testing.T, names ...string) *match.Registry {
	t.Helper()
	reg := match.NewRegistry()
	for _, name := range names {
		reg.Add(match.Participant{Name: name})
	}
	return reg
}

func TestParseAssignments(t *testing.T) {
	reg := checkRegistry(t, "Alice", "Bob", "Charlie")

	doc := "sender,recipient\nAlice,Bob\nBob,Charlie\nCharlie,Alice\n"
	got, err := parseAssignments(strings.NewReader(doc), reg)
	if err != nil {
		t.Fatalf("parseAssignments() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("parsed %d assignments, want 3", len(got))
	}

	alice, _ := reg.Lookup("Alice")
	bob, _ := reg.Lookup("Bob")
	if got[0].Sender != alice || got[0].Recipient != bob {
		t.Errorf("first assignment = %+v, want Alice→Bob", got[0])
	}
}

func TestParseAssignmentsNoHeader(t *testing.T) {
	reg := checkRegistry(t, "Alice", "Bob")

	// The header row is optional; plain pairs parse directly.
	got, err := parseAssignments(strings.NewReader("Alice,Bob\nBob,Alice\n"), reg)
	if err != nil {
		t.Fatalf("parseAssignments() error = %v", err)
	}
	if len(got) != 2 {
		t.Errorf("parsed %d assignments, want 2", len(got))
	}
}

func TestParseAssignmentsUnknownName(t *testing.T) {
	reg := checkRegistry(t, "Alice", "Bob")

	tests := []struct {
		name string
		doc  string
	}{
		{"unknown sender", "Ghost,Bob\n"},
		{"unknown recipient", "Alice,Ghost\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseAssignments(strings.NewReader(tt.doc), reg)
			if !errors.Is(err, errors.ErrCodeParticipantNotFound) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeParticipantNotFound)
			}
		})
	}
}

func TestParseAssignmentsMalformedRow(t *testing.T) {
	reg := checkRegistry(t, "Alice", "Bob")

	_, err := parseAssignments(strings.NewReader("Alice,Bob,extra\n"), reg)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidInput)
	}
}
