package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zuxi-dev/zuxi/internal/cli"
)

func TestNewApp(t *testing.T) {
	app := cli.NewApp()

	require.NotEmpty(t, app.Commands)

	commandNames := make([]string, 0, len(app.Commands))

	for i := 0; i < len(app.Commands); i++ {
		commandNames = append(commandNames, app.Commands[i].Name)
	}

	assert.Contains(t, commandNames, "to-json")
	assert.Contains(t, commandNames, "from-json")
	assert.Contains(t, commandNames, "fmt")
	assert.Contains(t, commandNames, "to-struct")
}
