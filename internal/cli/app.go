// Package cli contains CLI command handlers.
package cli

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/zuxi-dev/zuxi/internal/cli/format"
	"github.com/zuxi-dev/zuxi/internal/cli/fromjson"
	"github.com/zuxi-dev/zuxi/internal/cli/tojson"
	"github.com/zuxi-dev/zuxi/internal/cli/tostruct"
	"github.com/zuxi-dev/zuxi/internal/env"
	"github.com/zuxi-dev/zuxi/internal/version"
)

// NewApp creates new console application.
func NewApp() *cli.App {
	return &cli.App{
		Name:  "zuxi",
		Usage: "Format-conversion toolkit for YAML, JSON and friends",
		Before: func(c *cli.Context) error {
			if _, exists := env.ForceColors.Lookup(); exists {
				pterm.EnableColor()
			} else if _, exists = env.NoColors.Lookup(); exists {
				pterm.DisableColor()
			} else if v, ok := env.Term.Lookup(); ok && v == "dumb" {
				pterm.DisableColor()
			}

			return nil
		},
		Commands: []*cli.Command{
			tojson.NewCommand(),
			fromjson.NewCommand(),
			format.NewCommand(),
			tostruct.NewCommand(),
		},
		Version: version.Version(),
	}
}
