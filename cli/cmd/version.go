package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/FangYuan33/easy-code-reader/cli/render"
	"github.com/FangYuan33/easy-code-reader/types"
)

// VersionResponse is the response for the version command.
type VersionResponse struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
}

// VersionCommand returns the version command.
func VersionCommand(commit string) *cli.Command {
	return &cli.Command{
		Name:   "version",
		Usage:  "Show version information",
		Flags:  []cli.Flag{FormatFlag},
		Action: versionAction(commit),
	}
}

func versionAction(commit string) cli.ActionFunc {
	return func(c *cli.Context) error {
		r, err := render.NewRenderer(c)
		if err != nil {
			return err
		}
		return r.Render(VersionResponse{
			Version: types.Version,
			Commit:  commit,
		})
	}
}
