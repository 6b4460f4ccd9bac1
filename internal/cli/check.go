package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/neatfmt-dev/neatfmt/internal/config"
	"github.com/neatfmt-dev/neatfmt/internal/exitcode"
	"github.com/neatfmt-dev/neatfmt/internal/report"
	"github.com/neatfmt-dev/neatfmt/internal/style"
	"github.com/neatfmt-dev/neatfmt/internal/walk"
)

func RunCheck(cmd *cobra.Command, args []string) error {
	opts, err := globalOptions(cmd)
	if err != nil {
		return err
	}
	targets, err := walk.Prepare(args)
	if err != nil {
		return err
	}

	color := !opts.NoColor && isatty.IsTerminal(os.Stdout.Fd())
	result := walk.Walk(checkFile, targets, walk.Options{
		OnOutcome: func(display string, out walk.Outcome) {
			switch out.Kind {
			case walk.KindIncorrect:
				if color {
					fmt.Print(style.Colorize(out.Info))
				} else {
					fmt.Print(out.Info)
				}
			case walk.KindError:
				fmt.Fprintf(os.Stderr, "neatfmt: %s: %s\n", display, out.Message)
			}
		},
	})

	report.PrintFailures(os.Stderr, result)
	report.Print(os.Stdout, "check", result, opts.Verbose)
	writeStatsFile(opts, result)

	// Unprocessable files outrank formatting violations in the exit status.
	if broken := len(result.Failures) + result.Count(walk.KindError); broken > 0 {
		return exitcode.New(exitcode.ProcessErrors, "%d file(s) could not be processed", broken)
	}
	if incorrect := result.Count(walk.KindIncorrect); incorrect > 0 {
		return exitcode.New(exitcode.Violations, "%d file(s) formatted incorrectly", incorrect)
	}
	return nil
}

// checkFile classifies one file as correct or incorrect without touching it.
// Unreadable files surface as errors (failures); files the formatter rejects,
// such as binary content, come back as error-kind outcomes.
func checkFile(cfg *config.Config, display, path string) (walk.Outcome, error) {
	original, err := os.ReadFile(path)
	if err != nil {
		return walk.Outcome{}, err
	}
	revised, err := style.Reformat(original, cfg.Rules)
	if err != nil {
		return walk.Outcome{Kind: walk.KindError, Message: err.Error()}, nil
	}
	if bytes.Equal(original, revised) {
		return walk.Outcome{Kind: walk.KindCorrect}, nil
	}
	diff, err := style.Unified(display, original, revised)
	if err != nil {
		return walk.Outcome{}, err
	}
	return walk.Outcome{
		Kind:      walk.KindIncorrect,
		Info:      diff,
		DiffLines: style.CountChanges(diff),
	}, nil
}
