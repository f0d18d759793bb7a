package buildinfo

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	got := String()
	for _, want := range []string{"version: " + Version, "commit: " + Commit, "built: " + Date} {
		if !strings.Contains(got, want) {
			t.Errorf("String() = %q, missing %q", got, want)
		}
	}
}

func TestTemplate(t *testing.T) {
	got := Template()
	if !strings.Contains(got, "{{.Name}}") {
		t.Errorf("Template() = %q, should contain the cobra name placeholder", got)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Error("Template() should end with a newline")
	}
}
