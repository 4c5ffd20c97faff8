package main

import (
	"os"

	"github.com/finanztrack-dev/finanztrack/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
