// Package main is the entry point for the ocbundle CLI.
package main

import (
	"os"

	"github.com/opencode-kit/ocbundle/cmd/ocbundle/commands"
	"github.com/opencode-kit/ocbundle/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(errors.ExitCode(err))
	}
}
