package main

import (
	"context"

	"github.com/aretw0/atlas/internal/cli"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [exercise...]",
	Short: "Run exercises and print their results",
	Long:  `Runs the named exercises in catalogue order, or all of them when none are named.`,
	RunE:  runExercises,
}

func runExercises(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	sigCtx := cli.NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	return cli.Run(sigCtx, cli.RunOptions{
		Options: globalOptions(cmd),
		Format:  format,
		Names:   args,
		Banner:  cmd == rootCmd,
	})
}

func init() {
	rootCmd.AddCommand(runCmd)

	for _, c := range []*cobra.Command{runCmd, rootCmd} {
		c.Flags().StringP("format", "f", "", "Output format: text, json, yaml or markdown (default from config)")
	}

	// 'run' is the default when no command is provided.
	rootCmd.RunE = runExercises
}
