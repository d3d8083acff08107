// Package decompile invokes external decompiler engines against jar files.
//
// Both engines run as independent external processes bounded by a timeout.
// Decompilation is always whole-jar, never per-class; engines return the
// relative paths of the .java files they produced, normalized into a
// package-mirrored directory tree so the cache format is engine-agnostic.
package decompile

import (
	"context"
	"errors"
	"time"

	"github.com/FangYuan33/easy-code-reader/types"
)

// DefaultTimeout bounds a single engine invocation.
const DefaultTimeout = 30 * time.Second

// Engine reconstructs source text from a jar's bytecode.
type Engine interface {
	// Name identifies the engine for error reporting and metrics.
	Name() types.EngineChoice
	// Decompile runs the engine against jarPath, writing .java files under
	// outDir. It returns the relative paths produced, sorted, or a
	// *DecompileError on failure.
	Decompile(ctx context.Context, jarPath, outDir string) ([]string, error)
}

// runEngine executes one engine invocation and normalizes its outcome.
// All argv construction is done by the caller; this handles the timeout,
// failure classification, and output collection uniformly.
func runEngine(ctx context.Context, engine types.EngineChoice, timeout time.Duration, outDir, name string, args ...string) ([]string, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	result, err := runProcess(ctx, name, args...)
	stderr := string(result.Stderr)
	if err != nil {
		kind := KindExitStatus
		if errors.Is(err, context.DeadlineExceeded) {
			kind = KindTimeout
		}
		return nil, &DecompileError{Engine: engine, Kind: kind, Stderr: stderr, Err: err}
	}
	if result.ExitCode != 0 {
		return nil, &DecompileError{Engine: engine, Kind: classifyStderr(stderr), Stderr: stderr}
	}

	files, err := CollectSources(outDir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		// Some engine versions exit 0 after refusing newer bytecode; the
		// stderr pattern still identifies that case.
		kind := KindEmptyOutput
		if classifyStderr(stderr) == KindUnsupportedBytecode {
			kind = KindUnsupportedBytecode
		}
		return nil, &DecompileError{Engine: engine, Kind: kind, Stderr: stderr}
	}
	return files, nil
}
