package cmd

import (
	"errors"

	"github.com/urfave/cli/v2"

	"github.com/FangYuan33/easy-code-reader/cli/render"
	"github.com/FangYuan33/easy-code-reader/repo"
	"github.com/FangYuan33/easy-code-reader/types"
)

// ResolveCommand returns the resolve command: locate an artifact's files
// without extracting anything.
func ResolveCommand() *cli.Command {
	return &cli.Command{
		Name:   "resolve",
		Usage:  "Show the repository paths an artifact resolves to",
		Flags:  append(CommonFlags(), CoordinateFlag),
		Action: resolveAction,
	}
}

func resolveAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), exitInternal)
	}
	coord, err := parseCoordinateFlag(c)
	if err != nil {
		return err
	}
	root, err := repoRoot(c, cfg)
	if err != nil {
		return cli.Exit(err.Error(), exitInternal)
	}

	paths, err := repo.Resolve(root, coord)
	if err != nil {
		if errors.Is(err, types.ErrArtifactNotFound) {
			return cli.Exit(err.Error(), exitNotFound)
		}
		return cli.Exit(err.Error(), exitInternal)
	}

	r, err := render.NewRenderer(c)
	if err != nil {
		return cli.Exit(err.Error(), exitInternal)
	}
	return r.Render(paths)
}
