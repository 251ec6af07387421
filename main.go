package main

import (
	"os"

	"github.com/shikataNai/ScopeForge/cmd"
	"github.com/shikataNai/ScopeForge/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
