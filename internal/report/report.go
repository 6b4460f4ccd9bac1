// Package report renders walk results for humans and machines: a console
// summary, a duration formatter, and stats exports in EDN or TSV form.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/neatfmt-dev/neatfmt/internal/walk"
)

// FormatDuration renders an elapsed time in one of four ranges: fractional
// milliseconds below 100ms, whole milliseconds below one second, fractional
// seconds below one minute, and M:SS beyond that. Each upper bound is
// exclusive, so exactly 100ms prints as "100 ms".
func FormatDuration(d time.Duration) string {
	ms := float64(d.Microseconds()) / 1000.0
	switch {
	case ms < 100:
		return fmt.Sprintf("%.2f ms", ms)
	case ms < 1000:
		return fmt.Sprintf("%d ms", int64(ms))
	case ms < 60000:
		return fmt.Sprintf("%.2f sec", ms/1000.0)
	default:
		total := int64(ms)
		return fmt.Sprintf("%d:%02d", total/60000, (total%60000)/1000)
	}
}

// Print writes the result summary for the named command. One key=value line
// is always emitted for machines; verbose adds the human-readable breakdown:
// total files and duration, per-kind counts sorted by count descending, and
// the diff-line total when positive.
func Print(w io.Writer, mode string, result *walk.Result, verbose bool) {
	if verbose {
		fmt.Fprintf(w, "Processed %d files in %s\n", result.Total(), FormatDuration(result.Elapsed))
		for _, kc := range result.CountsByFrequency() {
			fmt.Fprintf(w, "%d %s\n", kc.Count, kc.Kind)
		}
		if len(result.Failures) > 0 {
			fmt.Fprintf(w, "%d failed\n", len(result.Failures))
		}
		if result.DiffLines > 0 {
			fmt.Fprintf(w, "Resulting diff has %d lines\n", result.DiffLines)
		}
	}

	parts := []string{
		fmt.Sprintf("%s:", mode),
		fmt.Sprintf("files=%d", result.Total()),
	}
	for _, kc := range result.CountsByFrequency() {
		parts = append(parts, fmt.Sprintf("%s=%d", kc.Kind, kc.Count))
	}
	parts = append(parts,
		fmt.Sprintf("failures=%d", len(result.Failures)),
		fmt.Sprintf("duration=%dms", result.Elapsed.Milliseconds()),
	)
	if result.DiffLines > 0 {
		parts = append(parts, fmt.Sprintf("diff-lines=%d", result.DiffLines))
	}
	fmt.Fprintln(w, strings.Join(parts, " "))
}

// PrintFailures lists every per-file failure on w, one line each.
func PrintFailures(w io.Writer, result *walk.Result) {
	for _, failure := range result.Failures {
		fmt.Fprintf(w, "neatfmt: %s: %v\n", failure.Path, failure.Err)
	}
}
