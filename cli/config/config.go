package config

import (
	"fmt"
	"time"
)

// DefaultPath is the config file looked up in the working directory when
// no --config flag is given. A missing default file is not an error.
const DefaultPath = "easy-code-reader.yaml"

// Config represents an easy-code-reader.yaml configuration file.
// All values are optional and act as defaults for CLI flags.
// CLI flags always override config values.
type Config struct {
	// Repository overrides local Maven repository discovery.
	Repository string `yaml:"repository"`
	// PreferSources controls whether packaged sources jars are tried
	// before decompilation. Defaults to true when unset.
	PreferSources *bool `yaml:"prefer_sources,omitempty"`
	// Java is the java binary used for toolchain probing and for
	// running the decompiler jars.
	Java     string       `yaml:"java"`
	LogLevel string       `yaml:"log_level"`
	Engines  EngineConfig `yaml:"engines"`
}

// EngineConfig holds decompiler engine defaults from the config file.
type EngineConfig struct {
	CFRJar     string   `yaml:"cfr_jar"`
	ProcyonJar string   `yaml:"procyon_jar"`
	Timeout    Duration `yaml:"timeout,omitempty"`
}

// SourcesPreferred resolves the PreferSources default.
func (c *Config) SourcesPreferred() bool {
	if c == nil || c.PreferSources == nil {
		return true
	}
	return *c.PreferSources
}

// Duration wraps time.Duration for YAML string parsing (e.g. "30s", "2m").
type Duration struct {
	time.Duration
}

// UnmarshalYAML parses a duration string like "30s" or "1m30s".
func (d *Duration) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	d.Duration = parsed
	return nil
}
