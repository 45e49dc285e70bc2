// Package main provides the entry point for the sortviz CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/ansonlam23/algorithm-visualizer/cmd/sortviz/commands"
	"github.com/ansonlam23/algorithm-visualizer/pkg/version"
)

func main() {
	version.InitBinaryVersion()

	err := commands.NewRootCommand().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
