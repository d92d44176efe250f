package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/atlas"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of atlas",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "atlas version %s\n", strings.TrimSpace(atlas.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
