package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"climastore.GO/config"
	"climastore.GO/service/catalog"
)

var reindexCmd = &cobra.Command{
	Use:   "search:reindex",
	Short: "Rebuild the Elasticsearch product index",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := config.NewDB()
		if err != nil {
			return fmt.Errorf("database connection failed: %w", err)
		}
		config.InitRedis()
		start := time.Now()
		n, err := catalog.NewService(db).Reindex(context.Background())
		if err != nil {
			return fmt.Errorf("reindex: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Indexed %d products in %s\n", n, time.Since(start).Round(time.Millisecond))
		return nil
	},
}

func init() {
	Register(reindexCmd)
}
