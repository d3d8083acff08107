// Package cache maintains the durable on-disk store of decompiled output.
//
// The store is a tool-named subdirectory of the artifact's version
// directory. Directory existence is the index: there is no separate index
// file and no process-wide cache object, so every operation takes the
// version directory explicitly and the whole store can be inspected or
// removed by hand. Entries are keyed by the jar they were decompiled from
// (the timestamped name for SNAPSHOT builds), so two builds of the same
// SNAPSHOT version never collide.
package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/FangYuan33/easy-code-reader/types"
)

// DirName is the cache subdirectory created inside each artifact version
// directory. Named after the tool, not the Maven target area, so it
// survives build reruns.
const DirName = ".easy-code-reader"

// manifestName is the provenance record written alongside each entry.
// It never participates in hit decisions.
const manifestName = "manifest.msgpack"

// Key derives the cache key for a resolved artifact: the effective jar's
// base name without the .jar extension. For SNAPSHOT builds resolved
// through a timestamped jar this embeds the timestamp token.
func Key(paths types.ResolvedPaths) string {
	return strings.TrimSuffix(filepath.Base(paths.EffectiveJar), ".jar")
}

// EntryDir returns the directory holding one cache entry.
func EntryDir(versionDir, key string) string {
	return filepath.Join(versionDir, DirName, key)
}

// manifest is the on-disk provenance record for one entry.
type manifest struct {
	CreatedFromJar string   `msgpack:"created_from_jar"`
	CreatedToken   string   `msgpack:"created_token"`
	Files          []string `msgpack:"files"`
	ToolVersion    string   `msgpack:"tool_version"`
}

// Lookup checks the cache for key and the specific requested source file.
// Returning the file itself (not just directory existence) makes partial
// and concurrently-written entries count as misses for files they lack.
// A miss is (nil, "", nil).
func Lookup(versionDir, key, relPath string) (*types.CacheEntry, string, error) {
	dir := EntryDir(versionDir, key)
	content, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(relPath)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", nil
		}
		return nil, "", fmt.Errorf("cache read %s: %w", dir, err)
	}

	entry := &types.CacheEntry{Key: key, Dir: dir}
	if m, merr := readManifest(dir); merr == nil && m != nil {
		entry.Files = m.Files
		entry.CreatedFromJar = m.CreatedFromJar
		entry.CreatedToken = m.CreatedToken
	}
	return entry, string(content), nil
}

func readManifest(dir string) (*manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, manifestName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var m manifest
	if err := msgpack.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("bad manifest in %s: %w", dir, err)
	}
	return &m, nil
}

// Store writes a full decompilation result as a new cache entry, replacing
// any existing entry for key. The entry is staged in a temp directory and
// renamed into place, so readers never observe a half-written tree under
// the final name; concurrent stores for the same key resolve as last
// writer wins. Failures are reported as *types.CacheWriteError so callers
// can degrade to returning the uncached result.
func Store(versionDir, key string, files map[string]string, fromJar, token string) (*types.CacheEntry, error) {
	dir := EntryDir(versionDir, key)
	parent := filepath.Dir(dir)

	if err := os.MkdirAll(parent, 0o755); err != nil {
		return nil, &types.CacheWriteError{Dir: parent, Err: err}
	}
	staging, err := os.MkdirTemp(parent, key+".tmp-")
	if err != nil {
		return nil, &types.CacheWriteError{Dir: parent, Err: err}
	}
	defer func() { _ = os.RemoveAll(staging) }()

	names := make([]string, 0, len(files))
	for rel, content := range files {
		dst := filepath.Join(staging, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return nil, &types.CacheWriteError{Dir: dir, Err: err}
		}
		if err := os.WriteFile(dst, []byte(content), 0o644); err != nil {
			return nil, &types.CacheWriteError{Dir: dir, Err: err}
		}
		names = append(names, rel)
	}
	sort.Strings(names)

	m := manifest{CreatedFromJar: fromJar, CreatedToken: token, Files: names, ToolVersion: types.Version}
	data, err := msgpack.Marshal(&m)
	if err != nil {
		return nil, &types.CacheWriteError{Dir: dir, Err: err}
	}
	if err := os.WriteFile(filepath.Join(staging, manifestName), data, 0o644); err != nil {
		return nil, &types.CacheWriteError{Dir: dir, Err: err}
	}

	if err := os.RemoveAll(dir); err != nil {
		return nil, &types.CacheWriteError{Dir: dir, Err: err}
	}
	if err := os.Rename(staging, dir); err != nil {
		return nil, &types.CacheWriteError{Dir: dir, Err: err}
	}

	return &types.CacheEntry{
		Key:            key,
		Dir:            dir,
		Files:          names,
		CreatedFromJar: fromJar,
		CreatedToken:   token,
	}, nil
}
