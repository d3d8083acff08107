package types

// EngineChoice selects the decompiler engine for a detected bytecode level.
type EngineChoice string

const (
	// EngineCFR handles bytecode from current Java releases (21 and later).
	EngineCFR EngineChoice = "cfr"
	// EngineProcyon handles older bytecode. It is also the documented
	// default when the local toolchain cannot be probed.
	EngineProcyon EngineChoice = "procyon"
)

// Other returns the engine to retry with after a failed decompile attempt.
func (e EngineChoice) Other() EngineChoice {
	if e == EngineCFR {
		return EngineProcyon
	}
	return EngineCFR
}
