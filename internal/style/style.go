// Package style implements the text-level reformatting rules: line endings,
// tab expansion, trailing whitespace, blank-line runs, and final newlines.
package style

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/neatfmt-dev/neatfmt/internal/config"
)

// Reformat applies the configured rules to src and returns the revised text.
// Inputs that are not valid UTF-8 are rejected so binary files never get
// rewritten by accident.
func Reformat(src []byte, rules config.RulesConfig) ([]byte, error) {
	if !utf8.Valid(src) {
		return nil, fmt.Errorf("input is not valid UTF-8 text")
	}

	text := string(src)
	hadCRLF := strings.Contains(text, "\r\n")
	text = strings.ReplaceAll(text, "\r\n", "\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if rules.ExpandTabs {
			line = expandLeadingTabs(line, rules.TabWidth)
		}
		if rules.TrimTrailing {
			line = strings.TrimRight(line, " \t")
		}
		lines[i] = line
	}

	if rules.MaxBlankLines > 0 {
		lines = collapseBlankRuns(lines, rules.MaxBlankLines)
	}

	revised := strings.Join(lines, "\n")
	if rules.FinalNewline && revised != "" && !strings.HasSuffix(revised, "\n") {
		revised += "\n"
	}

	eol := "\n"
	switch rules.LineEnding {
	case config.LineEndingCRLF:
		eol = "\r\n"
	case config.LineEndingKeep:
		if hadCRLF {
			eol = "\r\n"
		}
	}
	if eol != "\n" {
		revised = strings.ReplaceAll(revised, "\n", eol)
	}

	return []byte(revised), nil
}

func expandLeadingTabs(line string, tabWidth int) string {
	if tabWidth <= 0 {
		tabWidth = 4
	}
	expanded := 0
	for expanded < len(line) && line[expanded] == '\t' {
		expanded++
	}
	if expanded == 0 {
		return line
	}
	return strings.Repeat(" ", expanded*tabWidth) + line[expanded:]
}

// collapseBlankRuns caps runs of consecutive blank lines at max. The trailing
// element produced by splitting a newline-terminated string is not a line and
// is left alone.
func collapseBlankRuns(lines []string, max int) []string {
	out := make([]string, 0, len(lines))
	blanks := 0
	for i, line := range lines {
		last := i == len(lines)-1
		if line == "" && !last {
			blanks++
			if blanks > max {
				continue
			}
		} else if line != "" {
			blanks = 0
		}
		out = append(out, line)
	}
	return out
}
