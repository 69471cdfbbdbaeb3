// Package format contains CLI `fmt` command implementation.
package format

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/zuxi-dev/zuxi/internal/cli/shared"
	"github.com/zuxi-dev/zuxi/pkg/yaml"
)

// NewCommand creates `fmt` command.
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "Reformat YAML input into canonical two-space style",
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

			return shared.WriteOutput(c, yaml.Serialize(doc.Root()))
		},
		Flags: []cli.Flag{
			shared.OutputFlag(),
		},
	}
}
