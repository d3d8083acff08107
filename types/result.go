package types

// Strategy tags which extraction path satisfied a request, so callers can
// report provenance.
type Strategy string

const (
	// StrategySourcesJar means the text came from a packaged sources archive.
	StrategySourcesJar Strategy = "sources-jar"
	// StrategyCache means a previously decompiled result was served.
	StrategyCache Strategy = "cache"
	// StrategyDecompiled means a decompiler engine ran for this request.
	StrategyDecompiled Strategy = "decompiled"
	// StrategyBytecodeStub means only bytecode metadata could be produced.
	StrategyBytecodeStub Strategy = "bytecode-stub"
)

// BytecodeStub is the minimal metadata returned when every richer strategy
// is exhausted. It is a defined success, not a failure.
type BytecodeStub struct {
	ClassName    string `json:"class_name"`
	MajorVersion int    `json:"major_version,omitempty"`
	MinorVersion int    `json:"minor_version,omitempty"`
	// JavaVersion is the release name for MajorVersion ("8", "21"), empty
	// when the major version is unknown or unmapped.
	JavaVersion string `json:"java_version,omitempty"`
	SizeBytes   int64  `json:"size_bytes,omitempty"`
	Jar         string `json:"jar"`
}

// ExtractResult is the uniform outcome of one extraction request.
type ExtractResult struct {
	Strategy   Strategy `json:"strategy"`
	Coordinate string   `json:"coordinate"`
	ClassName  string   `json:"class_name"`
	// Code is the source text (or rendered stub text). Never empty.
	Code string `json:"code"`
	// Stub carries the raw metadata when Strategy is bytecode-stub.
	Stub *BytecodeStub `json:"stub,omitempty"`
}
