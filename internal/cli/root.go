package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "neatfmt",
		Short: "Check and fix text-level source style",
		Long: `Neatfmt checks source files against text-level style rules - line
endings, tab expansion, trailing whitespace, blank-line runs, and final
newlines - and can rewrite violations in place.

Configuration is discovered in .neatfmt.yaml files from each search root
upward and merged over the built-in defaults.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print the full report after processing")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colorized diff output")
	rootCmd.PersistentFlags().String("stats", "", "Write a stats report to this file (.edn or .tsv)")

	findCmd := &cobra.Command{
		Use:   "find [paths...]",
		Short: "List the files that would be processed",
		RunE:  RunFind,
	}

	checkCmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Report files whose formatting differs from the configured style",
		RunE:  RunCheck,
	}

	fixCmd := &cobra.Command{
		Use:   "fix [paths...]",
		Short: "Rewrite misformatted files in place",
		RunE:  RunFix,
	}

	pipeCmd := &cobra.Command{
		Use:   "pipe",
		Short: "Format standard input to standard output",
		Args:  cobra.NoArgs,
		RunE:  RunPipe,
	}

	configCmd := &cobra.Command{
		Use:   "config [path]",
		Short: "Show the effective configuration for a path",
		Args:  cobra.MaximumNArgs(1),
		RunE:  RunConfig,
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("neatfmt %s\n", version)
			return nil
		},
	}

	rootCmd.AddCommand(
		findCmd,
		checkCmd,
		fixCmd,
		pipeCmd,
		configCmd,
		versionCmd,
	)

	return rootCmd
}
