// Package main is the entry point for the transport scenario CLI.
package main

import (
	"os"

	"github.com/katalvlaran/transport/cmd/transport/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
