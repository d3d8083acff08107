// Package toolchain probes the local Java installation to select a
// compatible decompiler engine.
package toolchain

import (
	"context"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/FangYuan33/easy-code-reader/types"
)

// VersionUnknown is returned when the local Java version cannot be
// determined. Callers apply the documented default (the legacy engine)
// and record a warning; detection failure is never fatal on its own.
const VersionUnknown = 0

// probeTimeout bounds the java -version invocation.
const probeTimeout = 5 * time.Second

// versionPattern matches the quoted version in `java -version` output,
// e.g. `java version "1.8.0_292"` or `openjdk version "21.0.1"`.
var versionPattern = regexp.MustCompile(`version "([0-9._]+)[^"]*"`)

// DetectJavaMajor runs `java -version` and parses the major version.
// javaPath defaults to "java" when empty. On any failure (binary missing,
// non-zero exit, unparseable output) it returns VersionUnknown and a
// VersionDetectionError.
func DetectJavaMajor(ctx context.Context, javaPath string) (int, error) {
	if javaPath == "" {
		javaPath = "java"
	}
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	// java prints version info on stderr; capture both streams.
	out, err := exec.CommandContext(ctx, javaPath, "-version").CombinedOutput()
	if err != nil {
		return VersionUnknown, &types.VersionDetectionError{Output: string(out), Err: err}
	}
	major, ok := ParseMajor(string(out))
	if !ok {
		return VersionUnknown, &types.VersionDetectionError{Output: string(out)}
	}
	return major, nil
}

// ParseMajor extracts the Java major version from version-query output.
// Handles the legacy "1.8.0_292" form (major 8) and the modern "21.0.1"
// form. Returns (VersionUnknown, false) when no version can be read.
func ParseMajor(output string) (int, bool) {
	m := versionPattern.FindStringSubmatch(output)
	if m == nil {
		return VersionUnknown, false
	}
	v := strings.TrimPrefix(m[1], "1.")
	head, _, _ := strings.Cut(v, ".")
	head, _, _ = strings.Cut(head, "_")
	major, err := strconv.Atoi(head)
	if err != nil || major <= 0 {
		return VersionUnknown, false
	}
	return major, true
}

// modernEngineMinimum is the Java major version from which CFR is selected.
const modernEngineMinimum = 21

// ChooseEngine maps a detected Java major version to a decompiler engine.
// Unknown versions select the legacy engine.
func ChooseEngine(major int) types.EngineChoice {
	if major >= modernEngineMinimum {
		return types.EngineCFR
	}
	return types.EngineProcyon
}
