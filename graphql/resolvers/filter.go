package resolvers

import "climastore.GO/service/catalog"

// ProductFilter mirrors the ProductFilter input type.
type ProductFilter struct {
	BrandIds        *[]int32
	ProductTypeId   *int32
	MinPrice        *float64
	MaxPrice        *float64
	EnergyClassIds  *[]int32
	BtuIds          *[]int32
	PowerThresholds *[]float64
	RoomSize        *string
	Search          *string
	Featured        *bool
	OnSale          *bool
	New             *bool
	InStock         *bool
}

// ProductsArgs matches the products query arguments (defaults in schema: page=1, pageSize=12).
type ProductsArgs struct {
	Filter    *ProductFilter
	Page      int32
	PageSize  int32
	SortBy    *string
	SortOrder *string
}

// SearchArgs adds the full-text query to ProductsArgs.
type SearchArgs struct {
	Query     string
	Filter    *ProductFilter
	Page      int32
	PageSize  int32
	SortBy    *string
	SortOrder *string
}

func (a ProductsArgs) request() catalog.FilterRequest {
	req := a.Filter.request()
	req.Page = int(a.Page)
	req.PageSize = int(a.PageSize)
	req.SortBy = deref(a.SortBy)
	req.SortOrder = deref(a.SortOrder)
	return req
}

func (a SearchArgs) request() catalog.FilterRequest {
	return ProductsArgs{Filter: a.Filter, Page: a.Page, PageSize: a.PageSize, SortBy: a.SortBy, SortOrder: a.SortOrder}.request()
}

func (f *ProductFilter) request() catalog.FilterRequest {
	var req catalog.FilterRequest
	if f == nil {
		return req
	}
	req.BrandIDs = ids(f.BrandIds)
	req.EnergyClassIDs = ids(f.EnergyClassIds)
	req.BTUIDs = ids(f.BtuIds)
	if f.PowerThresholds != nil {
		req.PowerThresholds = *f.PowerThresholds
	}
	if f.ProductTypeId != nil {
		id := idOf(*f.ProductTypeId)
		req.ProductTypeID = &id
	}
	req.PriceMin = f.MinPrice
	req.PriceMax = f.MaxPrice
	req.RoomSize = deref(f.RoomSize)
	req.SearchTerm = deref(f.Search)
	req.IsFeatured = f.Featured
	req.IsOnSale = f.OnSale
	req.IsNew = f.New
	req.InStock = f.InStock
	return req
}

// ids converts GraphQL ids. A non-positive id becomes 0, which names no row,
// so the criterion stays set and matches nothing.
func ids(in *[]int32) []uint {
	if in == nil {
		return nil
	}
	out := make([]uint, 0, len(*in))
	for _, v := range *in {
		out = append(out, idOf(v))
	}
	return out
}

func idOf(v int32) uint {
	if v <= 0 {
		return 0
	}
	return uint(v)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
