package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"climastore.GO/config"
	"climastore.GO/cron"
	_ "climastore.GO/cron/jobs"
)

var jobName string

var cronStartCmd = &cobra.Command{
	Use:   "cron:start",
	Short: "Start the cron scheduler or run a single job by name",
	RunE: func(cmd *cobra.Command, args []string) error {
		config.InitRedis()
		out := cmd.OutOrStdout()
		if jobName != "" {
			name := strings.ToLower(jobName)
			fmt.Fprintf(out, "Running cron job: %s\n", name)
			return cron.RunJob(context.Background(), name)
		}
		fmt.Fprintf(out, "Starting cron scheduler (%s)...\n", strings.Join(cron.Names(), ", "))
		c, err := cron.StartCron()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "Cron scheduler started. Press Ctrl+C to exit.")

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		<-c.Stop().Done()
		return nil
	},
}

func init() {
	cronStartCmd.Flags().StringVarP(&jobName, "job", "j", "", "Run a single cron job by name and exit")
	Register(cronStartCmd)
}
