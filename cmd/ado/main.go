// Package main is the entry point for the ado CLI.
package main

import (
	"os"

	"github.com/thoreinstein/ado/cmd/ado/commands"
	"github.com/thoreinstein/ado/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(errors.ExitCode(err))
	}
}
