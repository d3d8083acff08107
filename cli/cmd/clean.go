package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/FangYuan33/easy-code-reader/cache"
	"github.com/FangYuan33/easy-code-reader/repo"
)

// CleanCommand returns the clean command: remove an artifact's decompile
// cache directory. Resolution is not required; the version directory is
// derived from the coordinate alone so caches of since-deleted jars can
// still be cleaned.
func CleanCommand() *cli.Command {
	return &cli.Command{
		Name:   "clean",
		Usage:  "Remove the decompile cache for an artifact",
		Flags:  append(CommonFlags(), CoordinateFlag),
		Action: cleanAction,
	}
}

func cleanAction(c *cli.Context) error {
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

	versionDir := repo.VersionDir(root, coord)
	if err := cache.Clear(versionDir); err != nil {
		return cli.Exit(err.Error(), exitInternal)
	}
	fmt.Printf("cleaned cache for %s\n", coord)
	return nil
}
