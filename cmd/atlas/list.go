package main

import (
	"github.com/aretw0/atlas/internal/cli"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available exercises",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.List(globalOptions(cmd))
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
