package catalog

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"climastore.GO/config"
	"climastore.GO/core/logger"
	"climastore.GO/core/metrics"
	"climastore.GO/model/entity"
	productRepo "climastore.GO/model/repository/product"
	"climastore.GO/model/repository/reference"
	"climastore.GO/service/search"
	"climastore.GO/service/spec"
)

// ErrNotFound is returned for unknown or inactive products.
var ErrNotFound = errors.New("product not found")

// Service loads catalog data and runs it through an Engine. It is shared by
// the REST, GraphQL and CLI surfaces.
type Service struct {
	Engine   *Engine
	Products *productRepo.ProductRepository
	Refs     *reference.ReferenceRepository
	Search   *search.SearchService
}

// NewService wires the process-wide repositories and search client.
func NewService(db *gorm.DB) *Service {
	e := EngineFromConfig(config.App())
	e.OnRaw = func(field spec.Field, raw string) {
		metrics.NormalizeRaw.WithLabelValues(string(field)).Inc()
		logger.L().Debug("unparsed attribute value", zap.String("field", string(field)), zap.String("raw", raw))
	}
	return &Service{
		Engine:   e,
		Products: productRepo.GetProductRepository(db),
		Refs:     reference.GetReferenceRepository(db),
		Search:   search.GetSearchService(),
	}
}

// load fetches active products and the reference snapshot in parallel.
// ids restricts the product fetch when non-nil.
func (s *Service) load(ctx context.Context, ids []uint) ([]entity.Product, *ReferenceData, error) {
	var (
		products []entity.Product
		set      entity.ReferenceSet
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if ids != nil {
			products, err = s.Products.FetchByIDs(gctx, ids, true)
		} else {
			products, err = s.Products.FetchCatalog(gctx, true)
		}
		if err != nil {
			return fmt.Errorf("fetch products: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if set, err = s.Refs.Load(gctx); err != nil {
			return fmt.Errorf("fetch reference data: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return products, NewReferenceData(set), nil
}

// Query validates req and returns one page of cards.
func (s *Service) Query(ctx context.Context, req FilterRequest) (PageResult, error) {
	if err := req.Validate(); err != nil {
		return PageResult{}, err
	}
	products, refs, err := s.load(ctx, nil)
	if err != nil {
		return PageResult{}, err
	}
	return s.Engine.Query(products, refs, req), nil
}

// SearchQuery narrows req to the full-text hits for q. Without a search
// cluster, or when it fails, q becomes a substring SearchTerm instead.
func (s *Service) SearchQuery(ctx context.Context, q string, req FilterRequest) (PageResult, error) {
	if q != "" {
		ids, err := s.Search.SearchIDs(ctx, q, 0)
		switch {
		case err == nil:
			if ids == nil {
				ids = []uint{}
			}
			req.CandidateIDs = ids
		case errors.Is(err, search.ErrNotConfigured):
			req.SearchTerm = q
		default:
			logger.L().Warn("search backend failed, using substring match", zap.Error(err))
			req.SearchTerm = q
		}
	}
	return s.Query(ctx, req)
}

// Card returns the card for one active product.
func (s *Service) Card(ctx context.Context, id uint) (Card, error) {
	products, refs, err := s.load(ctx, []uint{id})
	if err != nil {
		return Card{}, err
	}
	if len(products) == 0 {
		return Card{}, ErrNotFound
	}
	return s.Engine.Card(&products[0], refs), nil
}

// Facets summarizes the active catalog.
func (s *Service) Facets(ctx context.Context) (Facets, error) {
	products, refs, err := s.load(ctx, nil)
	if err != nil {
		return Facets{}, err
	}
	return s.Engine.Facets(products, refs), nil
}

// FieldValue is one normalized field of one product.
type FieldValue struct {
	ProductID uint
	SKU       string
	Value     spec.Value
}

// NormalizeField reads f from every product, inactive ones included.
func (s *Service) NormalizeField(ctx context.Context, f spec.Field) ([]FieldValue, error) {
	if _, ok := s.Engine.Normalizer.Table().Rule(f); !ok {
		return nil, fmt.Errorf("unknown field %q", f)
	}
	products, err := s.Products.FetchCatalog(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	set, err := s.Refs.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch reference data: %w", err)
	}
	refs := NewReferenceData(set)
	out := make([]FieldValue, len(products))
	for i := range products {
		out[i] = FieldValue{
			ProductID: products[i].ID,
			SKU:       products[i].SKU,
			Value:     s.Engine.Normalize(&products[i], refs, f),
		}
	}
	return out, nil
}

// Reindex rebuilds the search index from the database.
func (s *Service) Reindex(ctx context.Context) (int, error) {
	if !s.Search.Configured() {
		return 0, search.ErrNotConfigured
	}
	products, err := s.Products.FetchCatalog(ctx, false)
	if err != nil {
		return 0, fmt.Errorf("fetch products: %w", err)
	}
	set, err := s.Refs.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch reference data: %w", err)
	}
	refs := NewReferenceData(set)
	docs := make([]search.Document, len(products))
	for i := range products {
		docs[i] = search.NewDocument(&products[i], refs.BrandName(products[i].BrandID))
	}
	return s.Search.Reindex(ctx, docs)
}
