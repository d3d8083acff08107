package decompile

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/FangYuan33/easy-code-reader/types"
)

// StubEngine is a test double that writes deterministic fixture files
// instead of spawning a process. It records invocations so tests can assert
// whether, and how often, the decompiler ran for a given request.
type StubEngine struct {
	// Engine is the name reported by Name.
	Engine types.EngineChoice
	// Files maps relative source paths to content written on each call.
	Files map[string]string
	// Fail, when set, is returned instead of writing files.
	Fail *DecompileError

	mu          sync.Mutex
	invocations int
	jars        []string
}

// Name implements Engine.
func (s *StubEngine) Name() types.EngineChoice { return s.Engine }

// Decompile implements Engine by writing the configured fixture tree.
func (s *StubEngine) Decompile(_ context.Context, jarPath, outDir string) ([]string, error) {
	s.mu.Lock()
	s.invocations++
	s.jars = append(s.jars, jarPath)
	s.mu.Unlock()

	if s.Fail != nil {
		return nil, s.Fail
	}
	for rel, content := range s.Files {
		dst := filepath.Join(outDir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return nil, err
		}
		if err := os.WriteFile(dst, []byte(content), 0o644); err != nil {
			return nil, err
		}
	}
	return CollectSources(outDir)
}

// Invocations returns how many times Decompile was called.
func (s *StubEngine) Invocations() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.invocations
}

// Jars returns the jar paths Decompile was called with, in order.
func (s *StubEngine) Jars() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.jars...)
}

// Verify StubEngine implements Engine.
var _ Engine = (*StubEngine)(nil)
