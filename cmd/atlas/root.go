package main

import (
	"fmt"
	"os"

	"github.com/aretw0/atlas/internal/cli"
	"github.com/aretw0/atlas/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "atlas",
	Short: "Atlas runs map and reduce exercises over the states and art datasets",
	Long: `Atlas loads two JSON datasets (US states and artworks) and prints the
result of each collection exercise: capital sentences, field projections,
a first-letter histogram, distinct styles and the works of Auguste Rodin.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Path to the atlas config file")
	rootCmd.PersistentFlags().String("data", "", "Directory holding states.json and art.json (default: bundled data)")
	rootCmd.PersistentFlags().String("redis", "", "Redis address to read datasets from (overrides --data)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")
}

// globalOptions reads the persistent flags.
func globalOptions(cmd *cobra.Command) cli.Options {
	flags := cmd.Flags()
	configPath, _ := flags.GetString("config")
	dataDir, _ := flags.GetString("data")
	redisAddr, _ := flags.GetString("redis")
	debug, _ := flags.GetBool("debug")

	return cli.Options{
		ConfigPath:     configPath,
		ConfigRequired: flags.Changed("config"),
		DataDir:        dataDir,
		RedisAddr:      redisAddr,
		Debug:          debug,
	}
}
