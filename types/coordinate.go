// Package types defines core domain types for easy-code-reader.
//
//nolint:revive // types is a common Go package naming convention
package types

import (
	"fmt"
	"strings"
)

// SnapshotSuffix marks a mutable, in-development Maven version.
// SNAPSHOT versions resolve through timestamped jar names on disk.
const SnapshotSuffix = "-SNAPSHOT"

// Coordinate identifies a Maven artifact by its (group, artifact, version)
// triple. Immutable; constructed per request and never persisted.
type Coordinate struct {
	Group    string `json:"group" yaml:"group"`
	Artifact string `json:"artifact" yaml:"artifact"`
	Version  string `json:"version" yaml:"version"`
}

// ParseCoordinate parses the "group:artifact:version" form accepted by the CLI.
func ParseCoordinate(s string) (Coordinate, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return Coordinate{}, fmt.Errorf("invalid coordinate %q (want group:artifact:version)", s)
	}
	for _, p := range parts {
		if p == "" {
			return Coordinate{}, fmt.Errorf("invalid coordinate %q: empty segment", s)
		}
	}
	return Coordinate{Group: parts[0], Artifact: parts[1], Version: parts[2]}, nil
}

// IsSnapshot reports whether the version carries the -SNAPSHOT suffix.
func (c Coordinate) IsSnapshot() bool {
	return strings.HasSuffix(c.Version, SnapshotSuffix)
}

// VersionPrefix returns the version without the -SNAPSHOT suffix.
// For release versions it returns the version unchanged.
func (c Coordinate) VersionPrefix() string {
	return strings.TrimSuffix(c.Version, SnapshotSuffix)
}

// String returns the canonical group:artifact:version form.
func (c Coordinate) String() string {
	return c.Group + ":" + c.Artifact + ":" + c.Version
}
