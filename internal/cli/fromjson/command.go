// Package fromjson contains CLI `from-json` command implementation.
package fromjson

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/zuxi-dev/zuxi/internal/cli/shared"
	"github.com/zuxi-dev/zuxi/pkg/yaml"
)

// NewCommand creates `from-json` command.
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:      "from-json",
		Aliases:   []string{"j2y"},
		Usage:     "Convert JSON input to YAML",
		ArgsUsage: "[text]",
		Action: func(c *cli.Context) error {
			src, err := shared.ReadInput(c)
			if err != nil {
				return err
			}

			// UseNumber keeps integer and float text apart so the bridge
			// preserves the original number kind.
			dec := json.NewDecoder(strings.NewReader(src))
			dec.UseNumber()

			var v any
			if err = dec.Decode(&v); err != nil {
				return errors.Wrap(err, "invalid input")
			}

			return shared.WriteOutput(c, yaml.Serialize(yaml.FromJSON(v)))
		},
		Flags: []cli.Flag{
			shared.OutputFlag(),
		},
	}
}
