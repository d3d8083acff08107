package decompile

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// CollectSources walks outDir and returns the relative paths of produced
// .java files, sorted, with forward-slash separators. Engine summary files
// and other non-source output are ignored, so the cache layout is identical
// regardless of which engine produced it.
func CollectSources(outDir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(outDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".java") {
			return nil
		}
		rel, err := filepath.Rel(outDir, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("collect sources in %s: %w", outDir, err)
	}
	sort.Strings(files)
	return files, nil
}
