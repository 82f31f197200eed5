package resolvers

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/graph-gophers/graphql-go"
	"go.uber.org/zap"

	"climastore.GO/core/metrics"
	gqlmodels "climastore.GO/graphql/models"
	"climastore.GO/service/catalog"
)

func (r *QueryResolver) Products(ctx context.Context, args ProductsArgs) (*gqlmodels.CardPage, error) {
	start := time.Now()
	res, err := r.svc.Query(ctx, args.request())
	if err != nil {
		r.log(ctx).Warn("products query failed", zap.Error(err))
		return nil, err
	}
	metrics.ObserveQuery("graphql", start)
	return gqlmodels.NewCardPage(res), nil
}

func (r *QueryResolver) Search(ctx context.Context, args SearchArgs) (*gqlmodels.CardPage, error) {
	start := time.Now()
	res, err := r.svc.SearchQuery(ctx, args.Query, args.request())
	if err != nil {
		r.log(ctx).Warn("search query failed", zap.String("query", args.Query), zap.Error(err))
		return nil, err
	}
	metrics.ObserveQuery("graphql", start)
	return gqlmodels.NewCardPage(res), nil
}

// Card returns null for unknown or inactive products.
func (r *QueryResolver) Card(ctx context.Context, args struct{ ID graphql.ID }) (*gqlmodels.Card, error) {
	id, err := strconv.ParseUint(string(args.ID), 10, 64)
	if err != nil {
		return nil, errors.New("invalid product id")
	}
	card, err := r.svc.Card(ctx, uint(id))
	if errors.Is(err, catalog.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		r.log(ctx).Warn("card query failed", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	return gqlmodels.NewCard(card), nil
}

func (r *QueryResolver) Facets(ctx context.Context) (*gqlmodels.Facets, error) {
	f, err := r.svc.Facets(ctx)
	if err != nil {
		r.log(ctx).Warn("facets query failed", zap.Error(err))
		return nil, err
	}
	return gqlmodels.NewFacets(f), nil
}
