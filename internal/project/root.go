// Package project provides utilities for detecting project root
// directories.
package project

import (
	"fmt"
	"os"
	"path/filepath"
)

// rootMarkers identify a checked-project root, in priority order.
var rootMarkers = []string{".git", "pyproject.toml"}

// FindRoot finds the project root directory, walking up from the current
// working directory and falling back to it when no marker is found.
func FindRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	if root, found := FindRootFrom(cwd); found {
		return root, nil
	}
	return cwd, nil
}

// FindRootFrom searches for project root markers starting from the given
// directory.
func FindRootFrom(startDir string) (string, bool) {
	currentDir := startDir

	for {
		if hasMarker(currentDir) {
			return currentDir, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", false
}

func hasMarker(dir string) bool {
	for _, marker := range rootMarkers {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}
