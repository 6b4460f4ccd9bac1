package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/neatfmt-dev/neatfmt/internal/config"
)

// RunConfig resolves and prints the effective configuration for the given
// path, or the working directory when no path is supplied.
func RunConfig(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	canonical, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path %q: %w", path, err)
	}
	cfg, err := config.Resolve(path, canonical)
	if err != nil {
		return err
	}
	rendered, err := cfg.Render()
	if err != nil {
		return err
	}
	fmt.Print(rendered)
	return nil
}
