package decompile

import (
	"context"
	"time"

	"github.com/FangYuan33/easy-code-reader/types"
)

// ProcyonEngine invokes the Procyon decompiler as an external java process.
// Procyon handles bytecode through Java 20 and is the documented default
// when toolchain detection fails.
type ProcyonEngine struct {
	// JavaPath is the java binary, defaulting to "java".
	JavaPath string
	// JarPath is the location of procyon-decompiler.jar.
	JarPath string
	// Timeout bounds one invocation, defaulting to DefaultTimeout.
	Timeout time.Duration
}

// Name implements Engine.
func (e *ProcyonEngine) Name() types.EngineChoice { return types.EngineProcyon }

// Decompile implements Engine. Procyon writes output directly into a
// package-mirrored tree under outDir.
func (e *ProcyonEngine) Decompile(ctx context.Context, jarPath, outDir string) ([]string, error) {
	return runEngine(ctx, e.Name(), e.Timeout, outDir,
		javaOrDefault(e.JavaPath), "-jar", e.JarPath, "-jar", jarPath, "-o", outDir)
}
