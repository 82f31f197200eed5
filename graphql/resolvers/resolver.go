package resolvers

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"climastore.GO/core/logger"
	"climastore.GO/graphql"
	gqlregistry "climastore.GO/graphql/registry"
	"climastore.GO/service/catalog"
)

// QueryResolver is the single resolver for all Query fields.
// Catalog fields live in catalog.go. New Query fields: use
// RegisterSchemaExtension + add a method here, or use _extension for fully
// dynamic resolvers.
type QueryResolver struct {
	svc *catalog.Service
}

func NewQueryResolver(svc *catalog.Service) *QueryResolver {
	return &QueryResolver{svc: svc}
}

func (r *QueryResolver) log(ctx context.Context) *zap.Logger {
	return logger.L().With(zap.String("request_id", graphql.RequestIDFromContext(ctx)))
}

// Extension dispatches to registered custom resolvers.
func (r *QueryResolver) Extension(ctx context.Context, args struct {
	Name string
	Args *string
}) (*string, error) {
	m := make(map[string]interface{})
	if args.Args != nil && *args.Args != "" {
		_ = json.Unmarshal([]byte(*args.Args), &m)
	}
	out, err := gqlregistry.Resolve(ctx, args.Name, m)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}
