// Package main provides the CLI for the dumptab extraction tool.
package main

import (
	"os"

	"github.com/threesity/dumptab/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
