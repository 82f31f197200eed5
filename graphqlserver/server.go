package graphqlserver

import (
	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"gorm.io/gorm"

	"climastore.GO/graphql"
	"climastore.GO/graphql/resolvers"
	"climastore.GO/service/catalog"
)

// NewSchema parses the schema and returns a graphql-go Schema backed by the
// process-wide catalog service.
func NewSchema(db *gorm.DB) (*gql.Schema, error) {
	return NewSchemaWithService(catalog.NewService(db))
}

// NewSchemaWithService builds the schema around svc.
func NewSchemaWithService(svc *catalog.Service) (*gql.Schema, error) {
	return gql.ParseSchema(graphql.Schema(), resolvers.NewQueryResolver(svc), gql.UseFieldResolvers())
}

// Handler returns an http.Handler for GraphQL (relay format).
func Handler(schema *gql.Schema) *relay.Handler {
	return &relay.Handler{Schema: schema}
}
