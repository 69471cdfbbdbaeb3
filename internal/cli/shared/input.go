// Package shared contains helpers used by every toolkit command.
package shared

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

// ErrNoInput is reported when neither a positional argument nor standard
// input provides any text to work on.
var ErrNoInput = errors.New("no input provided")

// OutputFlagName is the shared name of the output-destination flag.
const OutputFlagName = "output"

// OutputFlag designates a file to receive the result instead of stdout.
func OutputFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    OutputFlagName,
		Aliases: []string{"o"},
		Usage:   "write the result to a file instead of stdout",
	}
}

// ReadInput returns the raw text for a command: the first positional
// argument when present, otherwise everything readable from standard input.
func ReadInput(c *cli.Context) (string, error) {
	if c.Args().Len() > 0 {
		arg := c.Args().First()
		if strings.TrimSpace(arg) == "" {
			return "", ErrNoInput
		}
		return arg, nil
	}

	data, err := io.ReadAll(c.App.Reader)
	if err != nil {
		return "", errors.Wrap(err, "reading stdin")
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", ErrNoInput
	}
	return string(data), nil
}

// WriteOutput writes the finished result to the file designated by the
// output flag, or to standard output when the flag is unset. Commands call
// this only after the whole pipeline has succeeded, so a failed conversion
// never writes partial output.
func WriteOutput(c *cli.Context, text string) error {
	if path := c.String(OutputFlagName); path != "" {
		return errors.Wrap(os.WriteFile(path, []byte(text), 0o644), "writing output file")
	}

	_, err := io.WriteString(c.App.Writer, text)
	return errors.Wrap(err, "writing output")
}
