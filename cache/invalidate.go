package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/FangYuan33/easy-code-reader/repo"
)

// InvalidateStaleSnapshots removes cache entries for SNAPSHOT builds older
// than currentToken, reclaiming space and ensuring stale decompiled output
// is never served after the version was rebuilt upstream. Entries whose
// key carries no recognizable token (released versions, canonical snapshot
// names) are untouched. Returns the removed entry names.
func InvalidateStaleSnapshots(versionDir, currentToken string) ([]string, error) {
	if currentToken == "" {
		return nil, nil
	}
	cacheDir := filepath.Join(versionDir, DirName)
	entries, err := os.ReadDir(cacheDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan cache %s: %w", cacheDir, err)
	}

	var removed []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		token, ok := entryToken(entry.Name())
		if !ok || repo.CompareTokens(token, currentToken) >= 0 {
			continue
		}
		if err := os.RemoveAll(filepath.Join(cacheDir, entry.Name())); err != nil {
			return removed, fmt.Errorf("remove stale entry %s: %w", entry.Name(), err)
		}
		removed = append(removed, entry.Name())
	}
	return removed, nil
}

// entryToken extracts the trailing timestamp-buildNumber token from a cache
// entry name like "lib-1.0-20250101.000000-1". The artifact and version
// parts may themselves contain hyphens; only the fixed trailing form
// identifies a token.
func entryToken(name string) (string, bool) {
	parts := strings.Split(name, "-")
	if len(parts) < 2 {
		return "", false
	}
	token := strings.Join(parts[len(parts)-2:], "-")
	if !repo.IsSnapshotToken(token) {
		return "", false
	}
	return token, true
}

// Clear removes the artifact's entire cache directory.
func Clear(versionDir string) error {
	return os.RemoveAll(filepath.Join(versionDir, DirName))
}
