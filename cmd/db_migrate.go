package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"climastore.GO/config"
	"climastore.GO/model/entity"
)

var migrateCmd = &cobra.Command{
	Use:   "db:migrate",
	Short: "Create or update the catalog tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := config.NewDB()
		if err != nil {
			return fmt.Errorf("database connection failed: %w", err)
		}
		if err := db.AutoMigrate(entity.AllModels()...); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Catalog tables are up to date")
		return nil
	},
}

func init() {
	Register(migrateCmd)
}
