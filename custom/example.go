package custom

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"climastore.GO/api"
	"climastore.GO/cmd"
	gqlregistry "climastore.GO/graphql/registry"
	"climastore.GO/service/spec"
)

func init() {
	// GraphQL extension: _extension(name: "normalize", args: "{\"field\":\"btu\",\"value\":\"12 000\"}")
	gqlregistry.Register("normalize", Normalize)

	// CLI command
	cmd.Register(&cobra.Command{
		Use:   "catalog:fields",
		Short: "List the normalized fields and the attribute keys they read",
		Run: func(c *cobra.Command, args []string) {
			table := spec.Default().Table()
			for _, f := range table.Fields() {
				r, _ := table.Rule(f)
				fmt.Fprintf(c.OutOrStdout(), "%-18s %s\n", f, strings.Join(r.Keys, " | "))
			}
		},
	})

	// HTTP route
	api.RegisterRoute(func(e *echo.Echo, db *gorm.DB) {
		e.GET("/health", Health(db))
	})
}

// Normalize types a single attribute value with the rule for args["field"].
func Normalize(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	field, _ := args["field"].(string)
	value, _ := args["value"].(string)
	v, ok := spec.Default().Table().Parse(spec.Field(field), value)
	if !ok {
		return nil, fmt.Errorf("unknown field %q", field)
	}
	return map[string]string{"kind": v.Kind.String(), "value": v.String()}, nil
}

// Health reports whether the database answers.
func Health(db *gorm.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		if db == nil {
			return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
		}
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request().Context())
		}
		if err != nil {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "down", "error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	}
}
