package main

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/zuxi-dev/zuxi/internal/cli"
)

func main() {
	if err := cli.NewApp().Run(os.Args); err != nil {
		pterm.Error.Println(err.Error())

		os.Exit(1)
	}
}
