// Package cmd provides CLI commands for the easy-code-reader binary.
package cmd

import "github.com/urfave/cli/v2"

// Shared flags across commands.
var (
	// FormatFlag selects output format: json, table, yaml.
	FormatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "Output format: json, table, yaml",
	}

	// ConfigFlag names an alternate config file.
	ConfigFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "Path to config file (default: easy-code-reader.yaml)",
	}

	// RepoFlag overrides local repository discovery.
	RepoFlag = &cli.StringFlag{
		Name:  "repo",
		Usage: "Local Maven repository root (default: MAVEN_REPO, M2_HOME, ~/.m2/repository)",
	}

	// CoordinateFlag names the artifact under operation.
	CoordinateFlag = &cli.StringFlag{
		Name:     "coordinate",
		Aliases:  []string{"c"},
		Usage:    "Maven coordinate as group:artifact:version",
		Required: true,
	}
)

// CommonFlags returns the flags shared by every command.
func CommonFlags() []cli.Flag {
	return []cli.Flag{
		FormatFlag,
		ConfigFlag,
		RepoFlag,
	}
}
