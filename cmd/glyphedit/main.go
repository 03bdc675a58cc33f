// Package main is the entry point for the glyphedit CLI.
package main

import (
	"errors"
	"os"

	"github.com/dshills/glyphedit/internal/cli"
	"github.com/dshills/glyphedit/internal/logging"
)

// Build-time variables set via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// Failed scripts were already reported line by line.
		if !errors.Is(err, cli.ErrScriptsFailed) {
			logging.Default().Error("command failed", logging.FieldError, err)
		}
		return 1
	}

	return 0
}
