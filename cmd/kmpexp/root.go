package main

import (
	"github.com/spf13/cobra"

	"github.com/dsalwasser/kmpexp/internal/app"
	"github.com/dsalwasser/kmpexp/internal/hcl_adapter"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	flagDir       string
	flagLogLevel  string
	flagLogFormat string
)

var rootCmd = &cobra.Command{
	Use:   "kmpexp",
	Short: "Generate KaMinPar experiments from a declarative description",
	Long: `kmpexp reads the Experiment.hcl description of an experiment directory,
fetches and compiles the requested partitioner variants, expands every
parameter combination and writes the bash scripts that submit the runs.`,
	Version:       version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return newApp(cmd).Run(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDir, "directory", "C", ".", "experiment directory to operate in")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "log format: text or json")
}

func newApp(cmd *cobra.Command) *app.App {
	return app.NewApp(cmd.OutOrStdout(), &app.AppConfig{
		Dir:       flagDir,
		LogLevel:  flagLogLevel,
		LogFormat: flagLogFormat,
	}, hcl_adapter.NewLoader())
}
