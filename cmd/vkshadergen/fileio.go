package main

import (
	"bytes"
	"fmt"
	"os"
)

// readBinaryFile slurps a file, returning nil when it cannot be read.
// mayNotExist suppresses the diagnostic for callers probing for a file
// that is legitimately absent.
func readBinaryFile(path string, mayNotExist bool) []byte {
	data, err := os.ReadFile(path)
	if err != nil {
		if !mayNotExist {
			fmt.Fprintf(os.Stderr, "Error reading file: %s (%v)\n", path, err)
		}
		return nil
	}
	return data
}

// writeFileIfChanged rewrites path only when the content differs from
// what is already on disk, keeping mtimes stable for incremental builds.
func writeFileIfChanged(path string, content []byte) error {
	existing := readBinaryFile(path, true)
	if existing != nil && bytes.Equal(existing, content) {
		return nil
	}
	return os.WriteFile(path, content, 0o644)
}
