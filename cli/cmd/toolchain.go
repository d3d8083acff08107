package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/FangYuan33/easy-code-reader/cli/render"
	"github.com/FangYuan33/easy-code-reader/toolchain"
	"github.com/FangYuan33/easy-code-reader/types"
)

// ToolchainResponse reports the probed Java installation and the engine
// it selects.
type ToolchainResponse struct {
	JavaMajor int                `json:"java_major"`
	Engine    types.EngineChoice `json:"engine"`
	// Error carries the detection failure, if any. Detection failure is
	// not fatal; the legacy engine default still applies.
	Error string `json:"error,omitempty"`
}

// ToolchainCommand returns the toolchain command: probe java -version and
// report which decompiler engine would be chosen.
func ToolchainCommand() *cli.Command {
	return &cli.Command{
		Name:   "toolchain",
		Usage:  "Show the detected Java version and selected decompiler engine",
		Flags:  CommonFlags(),
		Action: toolchainAction,
	}
}

func toolchainAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), exitInternal)
	}

	resp := ToolchainResponse{}
	major, derr := toolchain.DetectJavaMajor(c.Context, cfg.Java)
	if derr != nil {
		resp.Error = derr.Error()
	}
	resp.JavaMajor = major
	resp.Engine = toolchain.ChooseEngine(major)

	r, err := render.NewRenderer(c)
	if err != nil {
		return cli.Exit(err.Error(), exitInternal)
	}
	return r.Render(resp)
}
