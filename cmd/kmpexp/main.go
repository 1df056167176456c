// Command kmpexp turns a declarative experiment description into ready-to-run
// KaMinPar experiments: it fetches and compiles the requested partitioner
// variants, expands every parameter sweep, and writes the submission scripts
// that start the runs.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dsalwasser/kmpexp/internal/xterm"
)

func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, xterm.Fail.S(err.Error()))
		os.Exit(1)
	}
}
