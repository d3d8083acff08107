// Package repo resolves Maven coordinates to files in a local repository.
package repo

import (
	"fmt"
	"os"
	"path/filepath"
)

// Environment variables consulted when no explicit repository root is given.
const (
	// EnvRepo points directly at a repository directory.
	EnvRepo = "MAVEN_REPO"
	// EnvMavenHome points at a Maven home whose repository subfolder is used.
	EnvMavenHome = "M2_HOME"
)

// Root determines the repository root directory.
// Precedence: explicit argument, MAVEN_REPO, M2_HOME/repository,
// ~/.m2/repository.
func Root(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if dir := os.Getenv(EnvRepo); dir != "" {
		return dir, nil
	}
	if home := os.Getenv(EnvMavenHome); home != "" {
		return filepath.Join(home, "repository"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".m2", "repository"), nil
}
