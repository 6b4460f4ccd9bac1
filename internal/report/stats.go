package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"olympos.io/encoding/edn"

	"github.com/neatfmt-dev/neatfmt/internal/walk"
)

// Stats is the serializable view of an aggregate result. Elapsed is wall
// time in milliseconds.
type Stats struct {
	Files     map[string]int `edn:"files"`
	Total     int            `edn:"total"`
	Elapsed   int64          `edn:"elapsed"`
	DiffLines int            `edn:"diff-lines,omitempty"`
}

// BuildStats derives a fresh Stats from a walk result.
func BuildStats(result *walk.Result) Stats {
	return Stats{
		Files:     result.Counts(),
		Total:     result.Total(),
		Elapsed:   result.Elapsed.Milliseconds(),
		DiffLines: result.DiffLines,
	}
}

// WriteStats writes stats to path, choosing the encoder by file extension:
// ".edn" serializes one structured literal, ".tsv" emits one key<TAB>value
// line per field with the per-kind counts flattened to files/<kind> keys.
// Any other extension is rejected with a warning; no file is written and no
// error is returned, so the command's exit status is unaffected.
func WriteStats(path string, stats Stats) error {
	var data []byte
	switch strings.TrimPrefix(filepath.Ext(path), ".") {
	case "edn":
		encoded, err := edn.Marshal(stats)
		if err != nil {
			return fmt.Errorf("failed to encode stats: %w", err)
		}
		data = append(encoded, '\n')
	case "tsv":
		data = []byte(encodeTSV(stats))
	default:
		fmt.Fprintf(os.Stderr, "neatfmt: warning: unsupported stats file extension %q\n", filepath.Ext(path))
		return nil
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write stats file %s: %w", path, err)
	}
	return nil
}

func encodeTSV(stats Stats) string {
	var b strings.Builder
	for kind, count := range stats.Files {
		fmt.Fprintf(&b, "files/%s\t%d\n", kind, count)
	}
	fmt.Fprintf(&b, "total\t%d\n", stats.Total)
	fmt.Fprintf(&b, "elapsed\t%d\n", stats.Elapsed)
	if stats.DiffLines > 0 {
		fmt.Fprintf(&b, "diff-lines\t%d\n", stats.DiffLines)
	}
	return b.String()
}
