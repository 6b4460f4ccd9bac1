package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/neatfmt-dev/neatfmt/internal/config"
	"github.com/neatfmt-dev/neatfmt/internal/style"
)

// RunPipe formats standard input to standard output using the configuration
// resolved for the working directory.
func RunPipe(cmd *cobra.Command, args []string) error {
	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}
	cfg, err := config.Resolve("stdin", dir)
	if err != nil {
		return err
	}

	src, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("failed to read standard input: %w", err)
	}
	out, err := style.Reformat(src, cfg.Rules)
	if err != nil {
		return fmt.Errorf("failed to format input: %w", err)
	}
	if _, err := os.Stdout.Write(out); err != nil {
		return fmt.Errorf("failed to write standard output: %w", err)
	}
	return nil
}
