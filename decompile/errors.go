package decompile

import (
	"fmt"
	"strings"

	"github.com/FangYuan33/easy-code-reader/types"
)

// Kind classifies a decompilation failure.
type Kind string

const (
	// KindTimeout means the engine process exceeded its deadline and was
	// killed.
	KindTimeout Kind = "timeout"
	// KindUnsupportedBytecode means the engine rejected bytecode newer than
	// it understands; callers may retry with the other engine.
	KindUnsupportedBytecode Kind = "unsupported-bytecode-version"
	// KindExitStatus means the engine exited non-zero for any other reason.
	KindExitStatus Kind = "non-zero-exit"
	// KindEmptyOutput means the engine exited zero but produced no source
	// files.
	KindEmptyOutput Kind = "empty-output"
	// KindUnavailable means no binary for the engine could be found.
	KindUnavailable Kind = "engine-unavailable"
)

// DecompileError reports a failed engine invocation with captured stderr.
type DecompileError struct {
	Engine types.EngineChoice
	Kind   Kind
	Stderr string
	Err    error
}

func (e *DecompileError) Error() string {
	msg := fmt.Sprintf("%s decompile failed (%s)", e.Engine, e.Kind)
	if line := firstLine(e.Stderr); line != "" {
		msg += ": " + line
	}
	return msg
}

func (e *DecompileError) Unwrap() error { return e.Err }

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	return line
}

// unsupportedBytecodePatterns are stderr fragments identifying an engine
// rejecting bytecode newer than it understands. Matched case-sensitively
// against the tool's own messages.
var unsupportedBytecodePatterns = []string{
	"Unsupported class file major version",
	"class file major version",
	"unsupported major.minor version",
	"has been compiled by a more recent version of the Java Runtime",
}

// classifyStderr upgrades a non-zero-exit failure to the
// unsupported-bytecode sub-kind when stderr matches a known rejection
// message.
func classifyStderr(stderr string) Kind {
	for _, p := range unsupportedBytecodePatterns {
		if strings.Contains(stderr, p) {
			return KindUnsupportedBytecode
		}
	}
	return KindExitStatus
}
