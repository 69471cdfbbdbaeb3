// Package tojson contains CLI `to-json` command implementation.
package tojson

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/zuxi-dev/zuxi/internal/cli/shared"
	"github.com/zuxi-dev/zuxi/pkg/yaml"
)

// NewCommand creates `to-json` command.
func NewCommand() *cli.Command {
	const compactFlagName = "compact"

	return &cli.Command{
		Name:      "to-json",
		Aliases:   []string{"y2j"},
		Usage:     "Convert YAML input to JSON",
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

			var out []byte
			if c.Bool(compactFlagName) {
				out, err = json.Marshal(yaml.ToJSON(doc.Root()))
			} else {
				out, err = json.MarshalIndent(yaml.ToJSON(doc.Root()), "", "  ")
			}
			if err != nil {
				return errors.Wrap(err, "invalid input")
			}

			return shared.WriteOutput(c, string(out)+"\n")
		},
		Flags: []cli.Flag{
			shared.OutputFlag(),
			&cli.BoolFlag{
				Name:    compactFlagName,
				Aliases: []string{"c"},
				Usage:   "emit compact JSON on a single line",
			},
		},
	}
}
