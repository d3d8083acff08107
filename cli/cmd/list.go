package cmd

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/FangYuan33/easy-code-reader/cli/render"
	"github.com/FangYuan33/easy-code-reader/repo"
)

// listWarningThreshold is the number of items above which we warn about
// narrowing the pattern.
const listWarningThreshold = 100

// ListCommand returns the list command: enumerate artifacts in the local
// repository, optionally filtered by a glob pattern over the layout path.
func ListCommand() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Usage:     "List artifacts in the local repository",
		ArgsUsage: "[pattern]",
		Flags:     CommonFlags(),
		Action:    listAction,
	}
}

func listAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), exitInternal)
	}
	root, err := repoRoot(c, cfg)
	if err != nil {
		return cli.Exit(err.Error(), exitInternal)
	}

	coords, err := repo.ListArtifacts(root, c.Args().First())
	if err != nil {
		return cli.Exit(err.Error(), exitInternal)
	}

	// Warn on TTY only, to stay quiet in pipelines.
	if len(coords) > listWarningThreshold && isStderrTTY() {
		fmt.Fprintf(os.Stderr, "Warning: returning %d results. Consider a narrower pattern (e.g. \"com/example/**\").\n\n", len(coords))
	}

	r, err := render.NewRenderer(c)
	if err != nil {
		return cli.Exit(err.Error(), exitInternal)
	}
	return r.Render(coords)
}

// isStderrTTY returns true if stderr is a TTY.
func isStderrTTY() bool {
	info, err := os.Stderr.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
