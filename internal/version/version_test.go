package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	origCommit, origDate := Commit, Date
	t.Cleanup(func() { Commit, Date = origCommit, origDate })

	Commit, Date = "unknown", "unknown"
	if got := String(); !strings.HasPrefix(got, "hueful version "+Version+" (") {
		t.Errorf("String() = %q", got)
	}

	Commit, Date = "0123456789abcdef", "2025-01-01T00:00:00Z"
	if got := String(); !strings.Contains(got, "commit: 01234567,") {
		t.Errorf("String() = %q, want shortened commit", got)
	}

	Commit = "abc"
	if got := String(); !strings.Contains(got, "commit: abc,") {
		t.Errorf("String() = %q, want short commit unchanged", got)
	}
}
