package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// validateOutputPath rejects output directories that do not exist or that
// escape the working tree via parent traversal. The check runs before any
// write.
func validateOutputPath(dir string) error {
	clean := filepath.Clean(dir)
	for _, part := range strings.Split(clean, string(filepath.Separator)) {
		if part == ".." {
			return fmt.Errorf("output directory %q escapes the working tree", dir)
		}
	}
	info, err := os.Stat(clean)
	if err != nil {
		return fmt.Errorf("output directory %q does not exist; create it first", dir)
	}
	if !info.IsDir() {
		return fmt.Errorf("output path %q is not a directory", dir)
	}
	return nil
}
