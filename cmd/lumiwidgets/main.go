package main

import (
	"os"

	"github.com/dshills/lumiwidgets/pkg/cli"
)

// main is the entry point of the lumiwidgets CLI.
func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
