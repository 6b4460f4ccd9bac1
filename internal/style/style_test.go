package style

import (
	"testing"

	"github.com/neatfmt-dev/neatfmt/internal/config"
)

func defaultRules() config.RulesConfig {
	return config.Default().Rules
}

func TestReformatTrimsTrailingWhitespace(t *testing.T) {
	out, err := Reformat([]byte("a  \nb\t\n"), defaultRules())
	if err != nil {
		t.Fatalf("Reformat failed: %v", err)
	}
	if string(out) != "a\nb\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestReformatEnsuresFinalNewline(t *testing.T) {
	out, err := Reformat([]byte("a\nb"), defaultRules())
	if err != nil {
		t.Fatalf("Reformat failed: %v", err)
	}
	if string(out) != "a\nb\n" {
		t.Fatalf("unexpected output: %q", out)
	}

	// Empty input stays empty.
	out, err = Reformat(nil, defaultRules())
	if err != nil {
		t.Fatalf("Reformat of empty input failed: %v", err)
	}
	if string(out) != "" {
		t.Fatalf("expected empty output, got %q", out)
	}
}

func TestReformatCollapsesBlankRuns(t *testing.T) {
	out, err := Reformat([]byte("a\n\n\n\n\nb\n"), defaultRules())
	if err != nil {
		t.Fatalf("Reformat failed: %v", err)
	}
	if string(out) != "a\n\n\nb\n" {
		t.Fatalf("unexpected output: %q", out)
	}

	rules := defaultRules()
	rules.MaxBlankLines = 0
	out, err = Reformat([]byte("a\n\n\n\n\nb\n"), rules)
	if err != nil {
		t.Fatalf("Reformat failed: %v", err)
	}
	if string(out) != "a\n\n\n\n\nb\n" {
		t.Fatalf("expected blank runs kept when max-blank-lines is 0, got %q", out)
	}
}

func TestReformatExpandsLeadingTabs(t *testing.T) {
	rules := defaultRules()
	rules.ExpandTabs = true
	rules.TabWidth = 4

	out, err := Reformat([]byte("\t\tx\n"), rules)
	if err != nil {
		t.Fatalf("Reformat failed: %v", err)
	}
	if string(out) != "        x\n" {
		t.Fatalf("unexpected output: %q", out)
	}

	// Interior tabs are untouched.
	out, err = Reformat([]byte("a\tb\n"), rules)
	if err != nil {
		t.Fatalf("Reformat failed: %v", err)
	}
	if string(out) != "a\tb\n" {
		t.Fatalf("expected interior tab kept, got %q", out)
	}
}

func TestReformatLineEndings(t *testing.T) {
	out, err := Reformat([]byte("a\r\nb\r\n"), defaultRules())
	if err != nil {
		t.Fatalf("Reformat failed: %v", err)
	}
	if string(out) != "a\nb\n" {
		t.Fatalf("expected CRLF normalized to LF, got %q", out)
	}

	rules := defaultRules()
	rules.LineEnding = config.LineEndingCRLF
	out, err = Reformat([]byte("a\nb\n"), rules)
	if err != nil {
		t.Fatalf("Reformat failed: %v", err)
	}
	if string(out) != "a\r\nb\r\n" {
		t.Fatalf("expected LF converted to CRLF, got %q", out)
	}

	rules.LineEnding = config.LineEndingKeep
	out, err = Reformat([]byte("a\r\nb\r\n"), rules)
	if err != nil {
		t.Fatalf("Reformat failed: %v", err)
	}
	if string(out) != "a\r\nb\r\n" {
		t.Fatalf("expected original CRLF kept, got %q", out)
	}
}

func TestReformatRejectsBinaryInput(t *testing.T) {
	if _, err := Reformat([]byte{0xff, 0xfe, 0x00, 0x41}, defaultRules()); err == nil {
		t.Fatalf("expected invalid UTF-8 input to be rejected")
	}
}
