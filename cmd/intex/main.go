// Package main is the entry point for the intex CLI.
package main

import (
	"os"

	"github.com/katalvlaran/intex/cmd/intex/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
