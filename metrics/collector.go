// Package metrics accumulates process-wide extraction counters.
//
// The Collector is a leaf with no internal dependencies beyond types.
// Counters are absorbed at terminal states of the extraction state machine
// rather than recorded live inside components, avoiding double-counting
// when a request degrades through several strategies.
package metrics

import (
	"sync"

	"github.com/FangYuan33/easy-code-reader/types"
)

// Snapshot is an immutable point-in-time view of all counters.
// Safe to read concurrently after creation.
type Snapshot struct {
	// Terminal states
	ExtractionsByStrategy map[string]int64
	ArtifactNotFound      int64

	// Cache
	CacheHits          int64
	CacheMisses        int64
	CacheWriteFailures int64
	StaleEntriesRemoved int64

	// Toolchain / engines
	DetectionFailures int64
	EngineInvocations map[string]int64
	EngineFailures    map[string]int64
}

// Collector accumulates counters across extraction requests.
// Thread-safe via sync.Mutex. All increment methods are nil-receiver safe.
type Collector struct {
	mu sync.Mutex

	byStrategy       map[string]int64
	artifactNotFound int64

	cacheHits           int64
	cacheMisses         int64
	cacheWriteFailures  int64
	staleEntriesRemoved int64

	detectionFailures int64
	engineInvocations map[string]int64
	engineFailures    map[string]int64
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	return &Collector{
		byStrategy:        make(map[string]int64),
		engineInvocations: make(map[string]int64),
		engineFailures:    make(map[string]int64),
	}
}

// RecordStrategy counts a request reaching a terminal state.
func (c *Collector) RecordStrategy(s types.Strategy) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byStrategy[string(s)]++
}

// RecordArtifactNotFound counts a hard resolution failure.
func (c *Collector) RecordArtifactNotFound() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.artifactNotFound++
}

// RecordCacheHit counts a served cache entry.
func (c *Collector) RecordCacheHit() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cacheHits++
}

// RecordCacheMiss counts a lookup that fell through to decompilation.
func (c *Collector) RecordCacheMiss() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cacheMisses++
}

// RecordCacheWriteFailure counts a store that could not be persisted.
func (c *Collector) RecordCacheWriteFailure() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cacheWriteFailures++
}

// RecordStaleEntriesRemoved counts entries reclaimed by snapshot
// invalidation.
func (c *Collector) RecordStaleEntriesRemoved(n int) {
	if c == nil || n == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.staleEntriesRemoved += int64(n)
}

// RecordDetectionFailure counts a failed Java toolchain probe.
func (c *Collector) RecordDetectionFailure() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.detectionFailures++
}

// RecordEngineInvocation counts one engine process launch.
func (c *Collector) RecordEngineInvocation(e types.EngineChoice) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.engineInvocations[string(e)]++
}

// RecordEngineFailure counts one failed engine invocation.
func (c *Collector) RecordEngineFailure(e types.EngineChoice) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.engineFailures[string(e)]++
}

// Snapshot returns an immutable copy of all counters.
func (c *Collector) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		ExtractionsByStrategy: copyCounts(c.byStrategy),
		ArtifactNotFound:      c.artifactNotFound,
		CacheHits:             c.cacheHits,
		CacheMisses:           c.cacheMisses,
		CacheWriteFailures:    c.cacheWriteFailures,
		StaleEntriesRemoved:   c.staleEntriesRemoved,
		DetectionFailures:     c.detectionFailures,
		EngineInvocations:     copyCounts(c.engineInvocations),
		EngineFailures:        copyCounts(c.engineFailures),
	}
}

func copyCounts(m map[string]int64) map[string]int64 {
	out := make(map[string]int64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
