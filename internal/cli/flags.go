package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/neatfmt-dev/neatfmt/internal/report"
	"github.com/neatfmt-dev/neatfmt/internal/walk"
)

// GlobalOptions are the root flags consumed by every walking command.
type GlobalOptions struct {
	Verbose   bool
	NoColor   bool
	StatsFile string
}

func globalOptions(cmd *cobra.Command) (GlobalOptions, error) {
	verbose, err := optionalBoolFlag(cmd, "verbose")
	if err != nil {
		return GlobalOptions{}, err
	}
	noColor, err := optionalBoolFlag(cmd, "no-color")
	if err != nil {
		return GlobalOptions{}, err
	}
	statsFile, err := optionalStringFlag(cmd, "stats")
	if err != nil {
		return GlobalOptions{}, err
	}
	return GlobalOptions{Verbose: verbose, NoColor: noColor, StatsFile: statsFile}, nil
}

func optionalBoolFlag(cmd *cobra.Command, name string) (bool, error) {
	if cmd == nil || cmd.Flags().Lookup(name) == nil {
		return false, nil
	}
	value, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false, fmt.Errorf("failed to read --%s flag: %w", name, err)
	}
	return value, nil
}

func optionalStringFlag(cmd *cobra.Command, name string) (string, error) {
	if cmd == nil || cmd.Flags().Lookup(name) == nil {
		return "", nil
	}
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		return "", fmt.Errorf("failed to read --%s flag: %w", name, err)
	}
	return strings.TrimSpace(value), nil
}

// writeStatsFile exports the stats report when --stats was given. Export
// problems are warnings; they never change the command's exit status.
func writeStatsFile(opts GlobalOptions, result *walk.Result) {
	if opts.StatsFile == "" {
		return
	}
	if err := report.WriteStats(opts.StatsFile, report.BuildStats(result)); err != nil {
		fmt.Fprintf(os.Stderr, "neatfmt: warning: %v\n", err)
	}
}
