package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"climastore.GO/config"
	"climastore.GO/service/catalog"
	"climastore.GO/service/spec"
)

var (
	normalizeField   string
	normalizeRawOnly bool
)

var normalizeCmd = &cobra.Command{
	Use:   "catalog:normalize [value...]",
	Short: "Show how attribute text is typed for a field",
	Long: `With values, parses each one with the rule for --field.
Without values, reads the field from every product in the database.`,
	Example: `  climastore catalog:normalize --field cooling_capacity "0.9/2.5/3.2 kW"
  climastore catalog:normalize --field energy_class --raw-only`,
	RunE: func(cmd *cobra.Command, args []string) error {
		field := spec.Field(normalizeField)
		table := spec.Default().Table()
		if _, ok := table.Rule(field); !ok {
			return fmt.Errorf("unknown field %q (known: %s)", normalizeField, fieldList(table))
		}
		out := cmd.OutOrStdout()

		if len(args) > 0 {
			for _, raw := range args {
				v, _ := table.Parse(field, raw)
				printValue(out, raw, v)
			}
			return nil
		}

		db, err := config.NewDB()
		if err != nil {
			return fmt.Errorf("database connection failed: %w", err)
		}
		config.InitRedis()
		values, err := catalog.NewService(db).NormalizeField(context.Background(), field)
		if err != nil {
			return err
		}
		raw := 0
		for _, fv := range values {
			if fv.Value.IsRaw() && !fv.Value.Missing() {
				raw++
			} else if normalizeRawOnly {
				continue
			}
			printValue(out, fmt.Sprintf("#%d %s", fv.ProductID, fv.SKU), fv.Value)
		}
		fmt.Fprintf(out, "%d products, %d unparsed\n", len(values), raw)
		return nil
	},
}

func printValue(w io.Writer, label string, v spec.Value) {
	fmt.Fprintf(w, "%-32s %-7s %s\n", label, v.Kind, v)
}

func fieldList(t *spec.Table) string {
	fields := t.Fields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

func init() {
	normalizeCmd.Flags().StringVar(&normalizeField, "field", string(spec.FieldCoolingCapacity), "Field to normalize")
	normalizeCmd.Flags().BoolVar(&normalizeRawOnly, "raw-only", false, "List only values that did not parse")
	Register(normalizeCmd)
}
