package main

import (
	"os"

	"github.com/fatih/color"

	"combinator/cmd/combinator/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		_, _ = color.New(color.FgRed, color.Bold).Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
