package main

import (
	"os"

	"github.com/neatfmt-dev/neatfmt/internal/cli"
	"github.com/neatfmt-dev/neatfmt/internal/exitcode"
)

var version = "0.1.0-dev"

func main() {
	if err := cli.NewRootCommand(version).Execute(); err != nil {
		os.Exit(exitcode.From(err))
	}
}
