package tojson_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kami-zh/go-capturer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/zuxi-dev/zuxi/internal/cli/tojson"
)

func newApp(out *bytes.Buffer, stdin string) *cli.App {
	return &cli.App{
		Reader:   strings.NewReader(stdin),
		Writer:   out,
		Commands: []*cli.Command{tojson.NewCommand()},
	}
}

func TestCommandConvertsMapping(t *testing.T) {
	out := &bytes.Buffer{}

	err := newApp(out, "").Run([]string{"zuxi", "to-json", "name: zuxi\nversion: 1"})
	require.NoError(t, err)

	assert.JSONEq(t, `{"name": "zuxi", "version": 1}`, out.String())
	// Type inference must make version a bare number, not a string.
	assert.Contains(t, out.String(), `"version": 1`)
}

func TestCommandCompactOutput(t *testing.T) {
	out := &bytes.Buffer{}

	err := newApp(out, "").Run([]string{"zuxi", "to-json", "--compact", "- a\n- 2"})
	require.NoError(t, err)

	assert.Equal(t, "[\"a\",2]\n", out.String())
}

func TestCommandReadsStdin(t *testing.T) {
	out := &bytes.Buffer{}

	err := newApp(out, "tags: [dev, prod]\n").Run([]string{"zuxi", "to-json", "--compact"})
	require.NoError(t, err)

	assert.Equal(t, "{\"tags\":[\"dev\",\"prod\"]}\n", out.String())
}

func TestCommandWritesToStdoutByDefault(t *testing.T) {
	app := &cli.App{
		Reader:   strings.NewReader(""),
		Commands: []*cli.Command{tojson.NewCommand()},
	}

	output := capturer.CaptureStdout(func() {
		assert.NoError(t, app.Run([]string{"zuxi", "to-json", "--compact", "x: 1"}))
	})

	assert.Equal(t, "{\"x\":1}\n", output)
}

func TestCommandInvalidInput(t *testing.T) {
	out := &bytes.Buffer{}

	err := newApp(out, "").Run([]string{"zuxi", "to-json", "tags: [dev, prod"})
	require.Error(t, err)

	assert.Contains(t, err.Error(), "invalid input")
	// Nothing may be written when the pipeline fails.
	assert.Empty(t, out.String())
}

func TestCommandNoInput(t *testing.T) {
	out := &bytes.Buffer{}

	err := newApp(out, "").Run([]string{"zuxi", "to-json"})
	require.Error(t, err)

	assert.Contains(t, err.Error(), "no input provided")
	assert.Empty(t, out.String())
}
