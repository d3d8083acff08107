package types

// ResolvedPaths locates an artifact's files inside the local repository.
//
// EffectiveJar is the jar actually used for decompilation. For SNAPSHOT
// versions whose canonical -SNAPSHOT.jar name is absent, it is the most
// recently timestamped jar found in the version directory. It must exist
// on disk before any decompile attempt.
type ResolvedPaths struct {
	// VersionDir is the artifact's version directory under the repository root.
	VersionDir string `json:"version_dir"`
	// PrimaryJar is the canonical {artifact}-{version}.jar path, whether or
	// not it exists on disk.
	PrimaryJar string `json:"primary_jar"`
	// SourcesJar is the companion sources archive, empty when absent.
	SourcesJar string `json:"sources_jar,omitempty"`
	// EffectiveJar is the jar used for decompilation. Always set.
	EffectiveJar string `json:"effective_jar"`
	// Snapshot reports whether the coordinate's version is a SNAPSHOT.
	Snapshot bool `json:"snapshot"`
	// SnapshotToken is the timestamp-buildNumber token embedded in the
	// effective jar name, e.g. "20250102.000000-1". Empty for releases and
	// for snapshots resolved through the canonical jar name.
	SnapshotToken string `json:"snapshot_token,omitempty"`
}

// CacheEntry describes one decompiled jar in the on-disk cache.
type CacheEntry struct {
	// Key is the cache key: the effective jar base name without ".jar".
	Key string `json:"key"`
	// Dir is the entry's directory under the version folder.
	Dir string `json:"dir"`
	// Files are the relative source paths in the entry, sorted.
	Files []string `json:"files"`
	// CreatedFromJar is the jar the entry was decompiled from.
	CreatedFromJar string `json:"created_from_jar,omitempty"`
	// CreatedToken is the snapshot token at creation time, if any.
	CreatedToken string `json:"created_token,omitempty"`
}
