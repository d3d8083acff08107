package repo

import (
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ListArtifacts scans the repository for artifact version directories whose
// relative path matches pattern (doublestar glob syntax, e.g. "com/x/**").
// It returns coordinates in group:artifact:version form, sorted. An empty
// pattern matches the whole repository.
func ListArtifacts(root, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = "**"
	}
	fsys := os.DirFS(root)
	matches, err := doublestar.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
	}

	seen := make(map[string]struct{})
	var coords []string
	for _, m := range matches {
		info, err := fs.Stat(fsys, m)
		if err != nil || !info.IsDir() {
			continue
		}
		coord, ok := coordinateFromRelDir(m)
		if !ok || !dirHasJar(fsys, m) {
			continue
		}
		if _, dup := seen[coord]; dup {
			continue
		}
		seen[coord] = struct{}{}
		coords = append(coords, coord)
	}
	sort.Strings(coords)
	return coords, nil
}

// coordinateFromRelDir interprets a repository-relative directory as a
// version directory: all leading segments form the group, then artifact,
// then version.
func coordinateFromRelDir(rel string) (string, bool) {
	parts := strings.Split(rel, "/")
	if len(parts) < 3 {
		return "", false
	}
	version := parts[len(parts)-1]
	artifact := parts[len(parts)-2]
	group := strings.Join(parts[:len(parts)-2], ".")
	return group + ":" + artifact + ":" + version, true
}

// dirHasJar reports whether the directory directly contains a jar file.
// Version directories are distinguished from group segments this way.
func dirHasJar(fsys fs.FS, dir string) bool {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return false
	}
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".jar") {
			return true
		}
	}
	return false
}
