package decompile

import (
	"context"
	"time"

	"github.com/FangYuan33/easy-code-reader/types"
)

// CFREngine invokes the CFR decompiler as an external java process.
// CFR understands bytecode from current Java releases; it is selected for
// toolchains at Java 21 and later.
type CFREngine struct {
	// JavaPath is the java binary, defaulting to "java".
	JavaPath string
	// JarPath is the location of cfr.jar.
	JarPath string
	// Timeout bounds one invocation, defaulting to DefaultTimeout.
	Timeout time.Duration
}

// Name implements Engine.
func (e *CFREngine) Name() types.EngineChoice { return types.EngineCFR }

// Decompile implements Engine. CFR writes a package-mirrored tree under
// outDir; the collected result excludes its summary sidecar files.
func (e *CFREngine) Decompile(ctx context.Context, jarPath, outDir string) ([]string, error) {
	return runEngine(ctx, e.Name(), e.Timeout, outDir,
		javaOrDefault(e.JavaPath), "-jar", e.JarPath, jarPath,
		"--outputdir", outDir, "--silent", "true")
}

func javaOrDefault(path string) string {
	if path == "" {
		return "java"
	}
	return path
}
