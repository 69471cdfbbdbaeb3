// Package tostruct contains CLI `to-struct` command implementation.
package tostruct

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/zuxi-dev/zuxi/internal/cli/shared"
	"github.com/zuxi-dev/zuxi/internal/generator"
	"github.com/zuxi-dev/zuxi/pkg/yaml"
)

// NewCommand creates `to-struct` command.
func NewCommand() *cli.Command {
	const nameFlagName = "name"

	return &cli.Command{
		Name:      "to-struct",
		Aliases:   []string{"types"},
		Usage:     "Generate Go struct definitions from YAML input",
		ArgsUsage: "[text]",
		Action: func(c *cli.Context) error {
			src, err := shared.ReadInput(c)
			if err != nil {
				return err
			}

			doc, err := yaml.Parse(src)
			if err != nil {
				return errors.Wrap(err, "invalid input")
			}

			return shared.WriteOutput(c, generator.Generate(yaml.ToJSON(doc.Root()), c.String(nameFlagName)))
		},
		Flags: []cli.Flag{
			shared.OutputFlag(),
			&cli.StringFlag{
				Name:    nameFlagName,
				Aliases: []string{"n"},
				Usage:   "name of the generated root type",
				Value:   "Config",
			},
		},
	}
}
