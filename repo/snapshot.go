package repo

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/FangYuan33/easy-code-reader/types"
)

// snapshotTokenPattern matches the trailing token Maven embeds in deployed
// SNAPSHOT jar names: a yyyyMMdd.HHmmss timestamp, a dash, and a build
// counter. Disambiguation of jar names relies on this fixed trailing form,
// not on generic splitting, so artifact and version strings containing
// dots or hyphens cannot confuse the scan.
var snapshotTokenPattern = regexp.MustCompile(`^(\d{8}\.\d{6})-(\d+)$`)

// IsSnapshotToken reports whether s has the timestamp-buildNumber form.
func IsSnapshotToken(s string) bool {
	return snapshotTokenPattern.MatchString(s)
}

// CompareTokens orders two snapshot tokens. Timestamps are fixed-width and
// compare lexicographically; build numbers compare numerically so build 10
// sorts after build 9. Tokens that do not match the pattern fall back to
// plain string comparison.
func CompareTokens(a, b string) int {
	am := snapshotTokenPattern.FindStringSubmatch(a)
	bm := snapshotTokenPattern.FindStringSubmatch(b)
	if am == nil || bm == nil {
		return strings.Compare(a, b)
	}
	if c := strings.Compare(am[1], bm[1]); c != 0 {
		return c
	}
	an, _ := strconv.Atoi(am[2])
	bn, _ := strconv.Atoi(bm[2])
	switch {
	case an < bn:
		return -1
	case an > bn:
		return 1
	}
	return 0
}

// latestSnapshotJar scans dir for timestamped jars of the coordinate and
// returns the most recent one with its token. classifier is "" for the
// primary jar or "-sources" for the sources variant. A missing directory
// or no matching jar returns empty strings, not an error; the caller
// decides whether that is fatal.
func latestSnapshotJar(dir string, c types.Coordinate, classifier string) (string, string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", "", nil
		}
		return "", "", fmt.Errorf("scan %s: %w", dir, err)
	}

	prefix := c.Artifact + "-" + c.VersionPrefix() + "-"
	suffix := classifier + ".jar"

	var bestName, bestToken string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, suffix) {
			continue
		}
		token := strings.TrimSuffix(strings.TrimPrefix(name, prefix), suffix)
		if !snapshotTokenPattern.MatchString(token) {
			continue
		}
		if bestToken == "" || CompareTokens(token, bestToken) > 0 {
			bestToken = token
			bestName = name
		}
	}
	if bestName == "" {
		return "", "", nil
	}
	return filepath.Join(dir, bestName), bestToken, nil
}
