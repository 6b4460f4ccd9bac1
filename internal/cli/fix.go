package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/neatfmt-dev/neatfmt/internal/config"
	"github.com/neatfmt-dev/neatfmt/internal/exitcode"
	"github.com/neatfmt-dev/neatfmt/internal/fileutil"
	"github.com/neatfmt-dev/neatfmt/internal/report"
	"github.com/neatfmt-dev/neatfmt/internal/style"
	"github.com/neatfmt-dev/neatfmt/internal/walk"
)

func RunFix(cmd *cobra.Command, args []string) error {
	opts, err := globalOptions(cmd)
	if err != nil {
		return err
	}
	targets, err := walk.Prepare(args)
	if err != nil {
		return err
	}

	result := walk.Walk(fixFile, targets, walk.Options{
		OnOutcome: func(display string, out walk.Outcome) {
			if out.Kind == walk.KindFixed {
				fmt.Printf("Reformatted %s\n", display)
			}
		},
	})

	report.PrintFailures(os.Stderr, result)
	report.Print(os.Stdout, "fix", result, opts.Verbose)
	writeStatsFile(opts, result)

	// Rewriting files is the point of fix, so fixed counts never escalate the
	// exit status; only unprocessable files do.
	if len(result.Failures) > 0 {
		return exitcode.New(exitcode.ProcessErrors, "%d file(s) could not be processed", len(result.Failures))
	}
	return nil
}

// fixFile rewrites one misformatted file in place. Any file that cannot be
// read, reformatted, or written back is a failure.
func fixFile(cfg *config.Config, display, path string) (walk.Outcome, error) {
	original, err := os.ReadFile(path)
	if err != nil {
		return walk.Outcome{}, err
	}
	revised, err := style.Reformat(original, cfg.Rules)
	if err != nil {
		return walk.Outcome{}, err
	}
	if bytes.Equal(original, revised) {
		return walk.Outcome{Kind: walk.KindCorrect}, nil
	}

	diff, err := style.Unified(display, original, revised)
	if err != nil {
		return walk.Outcome{}, err
	}
	if _, err := fileutil.Rewrite(path, revised); err != nil {
		return walk.Outcome{}, err
	}
	return walk.Outcome{
		Kind:      walk.KindFixed,
		DiffLines: style.CountChanges(diff),
	}, nil
}
