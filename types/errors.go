package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for extraction failure classification.
// Use errors.Is(err, ErrXxx) for typed assertions.
var (
	// ErrArtifactNotFound indicates the artifact directory or jar is absent.
	// This is the only hard failure of an extraction request.
	ErrArtifactNotFound = errors.New("artifact not found")

	// ErrVersionDetection indicates the local Java toolchain could not be
	// probed. Recoverable: callers default to the legacy engine.
	ErrVersionDetection = errors.New("java version detection failed")

	// ErrCacheWrite indicates the cache directory could not be written.
	// Recoverable: extraction still returns the uncached result.
	ErrCacheWrite = errors.New("cache write failed")
)

// ArtifactNotFoundError is the hard failure of a resolution attempt.
// Path is the expected jar location, carried for caller diagnostics.
type ArtifactNotFoundError struct {
	Coordinate string
	Path       string
}

func (e *ArtifactNotFoundError) Error() string {
	return fmt.Sprintf("artifact %s not found at %s", e.Coordinate, e.Path)
}

// Is matches ErrArtifactNotFound.
func (e *ArtifactNotFoundError) Is(target error) bool {
	return target == ErrArtifactNotFound
}

// VersionDetectionError reports a failed Java toolchain probe.
type VersionDetectionError struct {
	// Output is the captured process output, kept for diagnostics.
	Output string
	// Err is the underlying failure, nil when the output was unparseable.
	Err error
}

func (e *VersionDetectionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("java version detection failed: %v", e.Err)
	}
	return fmt.Sprintf("java version detection failed: unparseable output %q", e.Output)
}

func (e *VersionDetectionError) Unwrap() error { return e.Err }

// Is matches ErrVersionDetection.
func (e *VersionDetectionError) Is(target error) bool {
	return target == ErrVersionDetection
}

// CacheWriteError reports a failed cache store.
type CacheWriteError struct {
	Dir string
	Err error
}

func (e *CacheWriteError) Error() string {
	return fmt.Sprintf("cache write failed at %s: %v", e.Dir, e.Err)
}

func (e *CacheWriteError) Unwrap() error { return e.Err }

// Is matches ErrCacheWrite.
func (e *CacheWriteError) Is(target error) bool {
	return target == ErrCacheWrite
}
