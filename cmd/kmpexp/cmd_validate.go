package main

import "github.com/spf13/cobra"

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the experiment description without building or writing anything",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return newApp(cmd).Validate(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
