package style

import (
	"strings"
	"testing"
)

func TestUnifiedDiff(t *testing.T) {
	diff, err := Unified("pkg/main.go", []byte("a\nold\nc\n"), []byte("a\nnew\nc\n"))
	if err != nil {
		t.Fatalf("Unified failed: %v", err)
	}
	for _, want := range []string{"--- a/pkg/main.go", "+++ b/pkg/main.go", "-old", "+new"} {
		if !strings.Contains(diff, want) {
			t.Fatalf("expected diff to contain %q, got:\n%s", want, diff)
		}
	}

	same, err := Unified("pkg/main.go", []byte("a\n"), []byte("a\n"))
	if err != nil {
		t.Fatalf("Unified failed: %v", err)
	}
	if same != "" {
		t.Fatalf("expected empty diff for identical content, got %q", same)
	}
}

func TestCountChanges(t *testing.T) {
	diff := "--- a/f\n+++ b/f\n@@ -1,3 +1,3 @@\n a\n-old\n+new\n+extra\n c\n"
	if got := CountChanges(diff); got != 3 {
		t.Fatalf("expected 3 changed lines, got %d", got)
	}
	if got := CountChanges(""); got != 0 {
		t.Fatalf("expected 0 changed lines for empty diff, got %d", got)
	}
}

func TestColorizeKeepsContent(t *testing.T) {
	diff := "--- a/f\n+++ b/f\n@@ -1 +1 @@\n-old\n+new\n"
	colored := Colorize(diff)
	for _, want := range []string{"-old", "+new", "@@ -1 +1 @@"} {
		if !strings.Contains(colored, want) {
			t.Fatalf("expected colorized diff to contain %q, got %q", want, colored)
		}
	}
	if got, want := strings.Count(colored, "\n"), strings.Count(diff, "\n"); got != want {
		t.Fatalf("expected %d lines after colorizing, got %d", want, got)
	}
}
