// Command pinsearch is a developer tool for the pinsearch plugin: it matches
// patterns against text, inspects configuration files and scans host
// executables for the process offsets of quick select.
package main

import (
	"os"

	"github.com/npillmayer/pinsearch/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
