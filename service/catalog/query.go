package catalog

import (
	"climastore.GO/config"
	"climastore.GO/model/entity"
	"climastore.GO/service/spec"
)

// PageResult is the paginated card list returned by every listing surface.
type PageResult = Page[Card]

// Engine runs the storefront pipeline: normalize, filter, sort, paginate,
// project. It holds no per-request state.
type Engine struct {
	Normalizer  *spec.Normalizer
	Projector   *Projector
	MaxPageSize int
	// OnRaw, when set, sees every attribute value that failed its rule.
	OnRaw RawObserver
}

func NewEngine(p *Projector, maxPageSize int) *Engine {
	return &Engine{Normalizer: spec.Default(), Projector: p, MaxPageSize: maxPageSize}
}

// EngineFromConfig builds an engine from the application settings.
func EngineFromConfig(c *config.Config) *Engine {
	p := NewProjector(c.SecondaryCurrencyRate, c.SecondaryCurrency, c.MediaUrl)
	p.DecimalComma = c.DecimalComma
	return NewEngine(p, c.MaxPageSize)
}

// Items wraps products for one query.
func (e *Engine) Items(products []entity.Product, refs *ReferenceData) []*Item {
	items := make([]*Item, len(products))
	for i := range products {
		items[i] = newItem(&products[i], refs, e.Normalizer, e.OnRaw)
	}
	return items
}

// Query filters, sorts and pages products. Only the returned page is
// projected to cards.
func (e *Engine) Query(products []entity.Product, refs *ReferenceData, req FilterRequest) PageResult {
	items := Filter(e.Items(products, refs), Compile(req))
	Sort(items, ParseSortKey(req.SortBy), Descending(req.SortOrder), refs)
	page := Paginate(items, req.Page, req.PageSize, e.MaxPageSize)
	return MapPage(page, func(it *Item) Card { return e.Projector.Project(it, refs) })
}

// Card projects a single product.
func (e *Engine) Card(p *entity.Product, refs *ReferenceData) Card {
	return e.Projector.Project(newItem(p, refs, e.Normalizer, e.OnRaw), refs)
}

// Normalize reads one field of a single product.
func (e *Engine) Normalize(p *entity.Product, refs *ReferenceData, f spec.Field) spec.Value {
	return newItem(p, refs, e.Normalizer, e.OnRaw).Value(f)
}
