// Package main provides the codeplus CLI entry point.
package main

import (
	"os"

	"github.com/iw2rmb/codeplus"
	"github.com/iw2rmb/codeplus/internal/cli"
	"github.com/iw2rmb/codeplus/internal/logging"
)

// Build-time variables set via ldflags. An empty version falls back to the
// VERSION file embedded in the module.
var (
	version = ""
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	if version == "" {
		version = codeplus.Version()
	}
	rootCmd := cli.NewRootCommand(cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	})

	if err := rootCmd.Execute(); err != nil {
		logging.Default().Error("command failed", logging.FieldError, err)
		return 1
	}

	return 0
}
