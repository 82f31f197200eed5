package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"climastore.GO/config"
	"climastore.GO/core/logger"
)

var rootCmd = &cobra.Command{
	Use:   "climastore",
	Short: "Air-conditioner catalog tools",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		c := config.App()
		logger.Init(c.LogLevel, c.LogFormat)
	},
	SilenceUsage: true,
}

// Execute applies registered commands and runs the CLI.
func Execute() {
	if err := Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
