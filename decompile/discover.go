package decompile

import (
	"os"
	"time"

	"github.com/FangYuan33/easy-code-reader/types"
)

// Conventional jar locations probed relative to the working directory when
// neither explicit configuration nor env overrides name an engine.
var (
	cfrCandidates     = []string{"cfr.jar", "decompilers/cfr.jar"}
	procyonCandidates = []string{"procyon-decompiler.jar", "decompilers/procyon-decompiler.jar"}
)

// Env overrides for engine jar locations.
const (
	EnvCFRJar     = "EASY_READER_CFR_JAR"
	EnvProcyonJar = "EASY_READER_PROCYON_JAR"
)

// Options configures engine construction.
type Options struct {
	// JavaPath is the java binary used to launch engine jars.
	JavaPath string
	// CFRJar and ProcyonJar override discovery when set.
	CFRJar     string
	ProcyonJar string
	// Timeout bounds each engine invocation; zero means DefaultTimeout.
	Timeout time.Duration
}

// Discover builds the engine set from explicit options, env overrides, and
// conventional jar locations, in that order. Engines whose jar cannot be
// found are absent from the returned map; the orchestrator reports them as
// unavailable if they are ever selected.
func Discover(opts Options) map[types.EngineChoice]Engine {
	engines := make(map[types.EngineChoice]Engine)
	if jar := findJar(opts.CFRJar, EnvCFRJar, cfrCandidates); jar != "" {
		engines[types.EngineCFR] = &CFREngine{JavaPath: opts.JavaPath, JarPath: jar, Timeout: opts.Timeout}
	}
	if jar := findJar(opts.ProcyonJar, EnvProcyonJar, procyonCandidates); jar != "" {
		engines[types.EngineProcyon] = &ProcyonEngine{JavaPath: opts.JavaPath, JarPath: jar, Timeout: opts.Timeout}
	}
	return engines
}

func findJar(explicit, envVar string, candidates []string) string {
	if explicit != "" {
		return explicit
	}
	if v := os.Getenv(envVar); v != "" {
		return v
	}
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			return c
		}
	}
	return ""
}
