// Package extract orchestrates source extraction for a class inside a
// Maven artifact: packaged sources first, then cached or fresh
// decompilation, and finally a bytecode metadata stub.
//
// Every terminal state carries a strategy tag so callers can report
// provenance. Only a missing artifact fails the operation; every other
// condition degrades to a lesser-quality but non-empty result.
package extract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/FangYuan33/easy-code-reader/cache"
	"github.com/FangYuan33/easy-code-reader/decompile"
	"github.com/FangYuan33/easy-code-reader/jarfile"
	"github.com/FangYuan33/easy-code-reader/log"
	"github.com/FangYuan33/easy-code-reader/metrics"
	"github.com/FangYuan33/easy-code-reader/repo"
	"github.com/FangYuan33/easy-code-reader/toolchain"
	"github.com/FangYuan33/easy-code-reader/types"
)

// Request is one extraction request.
type Request struct {
	Coordinate types.Coordinate
	// ClassName is the fully qualified class to extract.
	ClassName string
	// PreferSources tries the packaged sources jar before decompilation.
	PreferSources bool
}

// Options configures an Extractor beyond its required collaborators.
type Options struct {
	// JavaPath is the java binary used for version detection.
	JavaPath string
	Logger   *log.Logger
	Metrics  *metrics.Collector
}

// Extractor composes the resolver, toolchain probe, engines, and cache.
// It holds only read-only configuration; each Extract call is processed
// to completion independently, so instances are safe for concurrent use.
type Extractor struct {
	root    string
	engines map[types.EngineChoice]decompile.Engine
	java    string
	logger  *log.Logger
	metrics *metrics.Collector

	// detectMajor is swappable in tests.
	detectMajor func(ctx context.Context, javaPath string) (int, error)
}

// New creates an Extractor over a repository root and engine set.
func New(root string, engines map[types.EngineChoice]decompile.Engine, opts Options) *Extractor {
	logger := opts.Logger
	if logger == nil {
		logger = log.Nop()
	}
	return &Extractor{
		root:        root,
		engines:     engines,
		java:        opts.JavaPath,
		logger:      logger,
		metrics:     opts.Metrics,
		detectMajor: toolchain.DetectJavaMajor,
	}
}

// Metrics returns the collector, for callers that render counters.
func (x *Extractor) Metrics() *metrics.Collector { return x.metrics }

// Extract resolves the artifact and returns source text for the class,
// tagged with the strategy that produced it.
func (x *Extractor) Extract(ctx context.Context, req Request) (*types.ExtractResult, error) {
	logger := x.logger.WithRequest(req.Coordinate.String())

	paths, err := repo.Resolve(x.root, req.Coordinate)
	if err != nil {
		x.metrics.RecordArtifactNotFound()
		return nil, err
	}
	logger.Debug("resolved artifact", map[string]any{
		"effective_jar": paths.EffectiveJar,
		"snapshot":      paths.Snapshot,
	})

	if req.PreferSources && paths.SourcesJar != "" {
		if code, ok := x.fromSourcesJar(logger, paths.SourcesJar, req.ClassName); ok {
			x.metrics.RecordStrategy(types.StrategySourcesJar)
			return &types.ExtractResult{
				Strategy:   types.StrategySourcesJar,
				Coordinate: req.Coordinate.String(),
				ClassName:  req.ClassName,
				Code:       code,
			}, nil
		}
	}

	key := cache.Key(paths)
	relPath := jarfile.SourceEntryPath(req.ClassName)

	if paths.Snapshot {
		removed, ierr := cache.InvalidateStaleSnapshots(paths.VersionDir, paths.SnapshotToken)
		if ierr != nil {
			logger.Warn("stale snapshot invalidation failed", map[string]any{"error": ierr.Error()})
		} else if len(removed) > 0 {
			x.metrics.RecordStaleEntriesRemoved(len(removed))
			logger.Info("removed stale snapshot cache entries", map[string]any{"entries": removed})
		}
	}

	entry, code, lerr := cache.Lookup(paths.VersionDir, key, relPath)
	if lerr != nil {
		logger.Warn("cache lookup failed", map[string]any{"error": lerr.Error()})
	}
	if entry != nil {
		x.metrics.RecordCacheHit()
		x.metrics.RecordStrategy(types.StrategyCache)
		return &types.ExtractResult{
			Strategy:   types.StrategyCache,
			Coordinate: req.Coordinate.String(),
			ClassName:  req.ClassName,
			Code:       code,
		}, nil
	}
	x.metrics.RecordCacheMiss()

	files, derr := x.decompileWithFallback(ctx, logger, paths.EffectiveJar)
	if derr == nil {
		if _, cerr := cache.Store(paths.VersionDir, key, files, paths.EffectiveJar, paths.SnapshotToken); cerr != nil {
			x.metrics.RecordCacheWriteFailure()
			logger.Warn("cache write failed, returning uncached result", map[string]any{"error": cerr.Error()})
		}
		if text, ok := files[relPath]; ok {
			x.metrics.RecordStrategy(types.StrategyDecompiled)
			return &types.ExtractResult{
				Strategy:   types.StrategyDecompiled,
				Coordinate: req.Coordinate.String(),
				ClassName:  req.ClassName,
				Code:       text,
			}, nil
		}
		logger.Warn("decompiled output lacks requested class", map[string]any{"class": req.ClassName})
	} else {
		logger.Warn("decompilation exhausted", map[string]any{"error": derr.Error()})
	}

	stub := x.bytecodeStub(paths, req.ClassName)
	x.metrics.RecordStrategy(types.StrategyBytecodeStub)
	return &types.ExtractResult{
		Strategy:   types.StrategyBytecodeStub,
		Coordinate: req.Coordinate.String(),
		ClassName:  req.ClassName,
		Code:       RenderStub(stub),
		Stub:       stub,
	}, nil
}

// fromSourcesJar reads the class's source file out of a sources jar.
// Corrupt archives and missing entries are a miss, not a failure; the
// sources path never touches the cache.
func (x *Extractor) fromSourcesJar(logger *log.Logger, sourcesJar, className string) (string, bool) {
	data, err := jarfile.ReadEntry(sourcesJar, jarfile.SourceEntryPath(className))
	if err != nil {
		logger.Warn("sources jar unusable, falling back to decompilation", map[string]any{
			"jar":   sourcesJar,
			"error": err.Error(),
		})
		return "", false
	}
	return string(data), true
}

// decompileWithFallback runs the version-appropriate engine against the
// whole jar, retrying exactly once with the other engine on failure. The
// fallback never cascades further.
func (x *Extractor) decompileWithFallback(ctx context.Context, logger *log.Logger, jarPath string) (map[string]string, error) {
	major, err := x.detectMajor(ctx, x.java)
	if err != nil {
		x.metrics.RecordDetectionFailure()
		logger.Warn("java version detection failed, defaulting to legacy engine", map[string]any{
			"error": err.Error(),
		})
	}
	primary := toolchain.ChooseEngine(major)

	files, perr := x.runEngine(ctx, primary, jarPath)
	if perr == nil {
		return files, nil
	}
	logger.Warn("decompilation failed, retrying with fallback engine", map[string]any{
		"engine": string(primary),
		"error":  perr.Error(),
	})

	files, ferr := x.runEngine(ctx, primary.Other(), jarPath)
	if ferr == nil {
		return files, nil
	}
	return nil, ferr
}

// runEngine decompiles jarPath into a temp directory with one engine and
// reads the produced tree into memory.
func (x *Extractor) runEngine(ctx context.Context, choice types.EngineChoice, jarPath string) (map[string]string, error) {
	engine, ok := x.engines[choice]
	if !ok {
		return nil, &decompile.DecompileError{Engine: choice, Kind: decompile.KindUnavailable}
	}

	outDir, err := os.MkdirTemp("", "easy-code-reader-")
	if err != nil {
		return nil, fmt.Errorf("create decompile dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(outDir) }()

	x.metrics.RecordEngineInvocation(choice)
	rels, err := engine.Decompile(ctx, jarPath, outDir)
	if err != nil {
		x.metrics.RecordEngineFailure(choice)
		return nil, err
	}

	files := make(map[string]string, len(rels))
	for _, rel := range rels {
		data, err := os.ReadFile(filepath.Join(outDir, filepath.FromSlash(rel)))
		if err != nil {
			return nil, fmt.Errorf("read decompiled %s: %w", rel, err)
		}
		files[rel] = string(data)
	}
	return files, nil
}
