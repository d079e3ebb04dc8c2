// Package main provides the bearlint command-line tool.
package main

import (
	"os"

	"github.com/leapstack-labs/bearlint/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
