package main

import (
	"context"

	"github.com/aretw0/atlas/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the datasets against their schemas",
	Long:  `Loads both datasets and reports every missing or mistyped field.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Validate(context.Background(), globalOptions(cmd))
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
