package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap/zapcore"

	"github.com/FangYuan33/easy-code-reader/cli/config"
	"github.com/FangYuan33/easy-code-reader/decompile"
	"github.com/FangYuan33/easy-code-reader/extract"
	"github.com/FangYuan33/easy-code-reader/log"
	"github.com/FangYuan33/easy-code-reader/metrics"
	"github.com/FangYuan33/easy-code-reader/repo"
	"github.com/FangYuan33/easy-code-reader/types"
)

// Exit codes shared by all commands.
const (
	exitSuccess  = 0
	exitNotFound = 1
	exitInternal = 2
)

// loadConfig loads the file named by --config, or the working-directory
// default when the flag is absent.
func loadConfig(c *cli.Context) (*config.Config, error) {
	if path := c.String("config"); path != "" {
		return config.Load(path)
	}
	return config.LoadDefault()
}

// repoRoot resolves the repository root: --repo flag, then config file,
// then environment discovery.
func repoRoot(c *cli.Context, cfg *config.Config) (string, error) {
	explicit := c.String("repo")
	if explicit == "" {
		explicit = cfg.Repository
	}
	return repo.Root(explicit)
}

// newLogger builds the process logger from the configured level.
func newLogger(cfg *config.Config) (*log.Logger, error) {
	if cfg.LogLevel == "" {
		return log.NewLogger(zapcore.WarnLevel), nil
	}
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log_level %q: %w", cfg.LogLevel, err)
	}
	return log.NewLogger(level), nil
}

// newExtractor wires the extractor from config: engine discovery, logger,
// and a per-invocation metrics collector.
func newExtractor(c *cli.Context, cfg *config.Config) (*extract.Extractor, error) {
	root, err := repoRoot(c, cfg)
	if err != nil {
		return nil, err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}
	engines := decompile.Discover(decompile.Options{
		JavaPath:   cfg.Java,
		CFRJar:     cfg.Engines.CFRJar,
		ProcyonJar: cfg.Engines.ProcyonJar,
		Timeout:    cfg.Engines.Timeout.Duration,
	})
	return extract.New(root, engines, extract.Options{
		JavaPath: cfg.Java,
		Logger:   logger,
		Metrics:  metrics.NewCollector(),
	}), nil
}

// parseCoordinateFlag reads and parses the -c flag.
func parseCoordinateFlag(c *cli.Context) (types.Coordinate, error) {
	coord, err := types.ParseCoordinate(c.String("coordinate"))
	if err != nil {
		return types.Coordinate{}, cli.Exit(err.Error(), exitInternal)
	}
	return coord, nil
}
