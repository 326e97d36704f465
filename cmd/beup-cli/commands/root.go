package commands

import (
	"context"
	"fmt"
	"os"

	"beup-results/lib/telemetry"

	"github.com/spf13/cobra"
)

var (
	configPath *string
	dbPath     *string
	verbose    *bool
)

var rootCmd = &cobra.Command{
	Use:   "beup-cli",
	Short: "beup-cli scrapes BEUP examination results into a database and reports on them.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(*verbose)
	},
	SilenceUsage: true,
}

func init() {
	configPath = rootCmd.PersistentFlags().String("config", "config.json5", "The config file to read, a <name>.local.json5 next to it overrides it.")
	dbPath = rootCmd.PersistentFlags().String("db", "", "The sqlite database to use, overrides the config.")
	verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enables debug logs.")
}

// ExecuteContext runs the cli and returns the exit code.
func ExecuteContext(ctx context.Context) int {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
