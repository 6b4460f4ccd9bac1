// Package fileutil holds small filesystem helpers shared by the commands.
package fileutil

import (
	"bytes"
	"fmt"
	"os"
)

// Rewrite replaces the contents of an existing file in place, preserving its
// permission bits. The file is left untouched when data matches what is
// already on disk.
func Rewrite(path string, data []byte) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("failed to inspect %s: %w", path, err)
	}
	existing, err := os.ReadFile(path)
	if err == nil && bytes.Equal(existing, data) {
		return false, nil
	}
	if err := os.WriteFile(path, data, info.Mode().Perm()); err != nil {
		return false, fmt.Errorf("failed to rewrite %s: %w", path, err)
	}
	return true, nil
}
