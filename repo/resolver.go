package repo

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/FangYuan33/easy-code-reader/types"
)

// VersionDir computes the artifact version directory under the repository
// root: root/group-as-path/artifact/version.
func VersionDir(root string, c types.Coordinate) string {
	groupPath := filepath.Join(strings.Split(c.Group, ".")...)
	return filepath.Join(root, groupPath, c.Artifact, c.Version)
}

// Resolve locates the primary and sources jars for a coordinate.
//
// Canonical names ({artifact}-{version}.jar) are checked first. For
// SNAPSHOT versions whose canonical jar is absent, the version directory is
// scanned for timestamped deploys and the most recent one is selected; the
// sources variant is scanned independently. A missing primary jar fails
// with ArtifactNotFoundError; sources absence is never fatal.
func Resolve(root string, c types.Coordinate) (types.ResolvedPaths, error) {
	dir := VersionDir(root, c)

	paths := types.ResolvedPaths{
		VersionDir: dir,
		PrimaryJar: filepath.Join(dir, c.Artifact+"-"+c.Version+".jar"),
		Snapshot:   c.IsSnapshot(),
	}

	canonicalSources := filepath.Join(dir, c.Artifact+"-"+c.Version+"-sources.jar")
	if fileExists(canonicalSources) {
		paths.SourcesJar = canonicalSources
	}

	switch {
	case fileExists(paths.PrimaryJar):
		paths.EffectiveJar = paths.PrimaryJar
	case paths.Snapshot:
		jar, token, err := latestSnapshotJar(dir, c, "")
		if err != nil {
			return types.ResolvedPaths{}, err
		}
		if jar == "" {
			return types.ResolvedPaths{}, &types.ArtifactNotFoundError{
				Coordinate: c.String(), Path: paths.PrimaryJar,
			}
		}
		paths.EffectiveJar = jar
		paths.SnapshotToken = token
	default:
		return types.ResolvedPaths{}, &types.ArtifactNotFoundError{
			Coordinate: c.String(), Path: paths.PrimaryJar,
		}
	}

	if paths.SourcesJar == "" && paths.Snapshot {
		jar, _, err := latestSnapshotJar(dir, c, "-sources")
		if err != nil {
			return types.ResolvedPaths{}, err
		}
		paths.SourcesJar = jar
	}

	return paths, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
