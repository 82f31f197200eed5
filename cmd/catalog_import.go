package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"climastore.GO/config"
	"climastore.GO/model/repository/reference"
	productService "climastore.GO/service/product"
)

var (
	importFile       string
	importCreateRefs bool
	importDryRun     bool
)

var importCmd = &cobra.Command{
	Use:   "catalog:import",
	Short: "Import products and their attributes from CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(importFile)
		if err != nil {
			return fmt.Errorf("open CSV: %w", err)
		}
		defer f.Close()

		db, err := config.NewDB()
		if err != nil {
			return fmt.Errorf("database connection failed: %w", err)
		}
		config.InitRedis()

		res, err := productService.ImportCSV(context.Background(), db, reference.GetReferenceRepository(db), f, productService.ImportOptions{
			CreateReferences: importCreateRefs,
			DryRun:           importDryRun,
		})
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		out := cmd.OutOrStdout()
		for _, w := range res.Warnings {
			fmt.Fprintf(out, "  [warn] %s\n", w)
		}
		fmt.Fprintf(out, `
=== Import Report ===
CSV rows:       %d
Created:        %d
Updated:        %d
Skipped:        %d
Attributes:     %d
New references: %d
Mode:           %s
Total time:     %s
=====================
`, res.TotalRows, res.Created, res.Updated, res.Skipped, res.Attributes, res.ReferencesCreated,
			map[bool]string{true: "dry run", false: "write"}[importDryRun],
			res.TotalTime.Round(time.Millisecond))
		return nil
	},
}

func init() {
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "CSV file path (required)")
	importCmd.MarkFlagRequired("file")
	importCmd.Flags().BoolVar(&importCreateRefs, "create-refs", false, "Create missing brands, types, BTU and energy class rows")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Validate and count without writing")
	Register(importCmd)
}
