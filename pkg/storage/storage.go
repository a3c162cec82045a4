package storage

import (
	"fmt"
	"os"
)

// EnsureDir creates dir and any missing parents. Existing directories are
// left alone.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// HasFile reports whether a file exists at path.
func HasFile(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !os.IsNotExist(err)
}
