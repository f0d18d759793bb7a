package flow

import (
	"context"
	"strings"
	"testing"
)

func TestDOTFullNetwork(t *testing.T) {
	cfg := testConfig(t, []string{"Alice", "Bob"}, nil, nil)
	nw := Build(cfg)

	dot := nw.DOT(DOTOptions{})
	if !strings.HasPrefix(dot, "digraph flownet {") {
		t.Errorf("DOT() should start with digraph header, got %q", dot[:min(40, len(dot))])
	}

	for _, edge := range []string{
		`"source" -> "Alice (send)"`,
		`"source" -> "Bob (send)"`,
		`"Alice (recv)" -> "sink"`,
		`"Alice (send)" -> "Bob (recv)"`,
		`"Bob (send)" -> "Alice (recv)"`,
	} {
		if !strings.Contains(dot, edge) {
			t.Errorf("DOT() missing edge %s", edge)
		}
	}
	if got := strings.Count(dot, "->"); got != nw.EdgeCount() {
		t.Errorf("DOT() renders %d edges, want %d", got, nw.EdgeCount())
	}
}

func TestDOTFlowOnly(t *testing.T) {
	cfg := testConfig(t, []string{"Alice", "Bob", "Charlie"}, nil, nil)
	nw := Build(cfg)
	if _, err := nw.MaxFlow(context.Background()); err != nil {
		t.Fatalf("MaxFlow() error = %v", err)
	}

	// A full flow saturates three source edges, three sink edges, and three
	// matching edges; nothing else should be rendered.
	dot := nw.DOT(DOTOptions{FlowOnly: true})
	if got := strings.Count(dot, "->"); got != 9 {
		t.Errorf("FlowOnly DOT renders %d edges, want 9", got)
	}
	if !strings.Contains(dot, "style=bold") {
		t.Error("FlowOnly DOT should mark flow-carrying edges bold")
	}
}

func TestSanitizeLabel(t *testing.T) {
	if got := sanitizeLabel(`O"Brien`); got != "O'Brien" {
		t.Errorf("sanitizeLabel() = %q, want %q", got, "O'Brien")
	}
}
