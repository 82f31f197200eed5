package catalog

import (
	"fmt"
	"math"

	"github.com/labstack/echo/v4"

	catalogService "climastore.GO/service/catalog"
)

// BindFilterRequest reads a FilterRequest from the query string. List
// parameters accept repeated keys and comma-separated values. Paging is
// not validated here.
func BindFilterRequest(c echo.Context, defaultPageSize int) (catalogService.FilterRequest, error) {
	req := catalogService.FilterRequest{Page: 1, PageSize: defaultPageSize}

	var (
		typeID                  uint
		minPrice, maxPrice      float64
		featured, onSale, isNew bool
		inStock                 bool
	)
	b := echo.QueryParamsBinder(c)
	err := b.
		BindWithDelimiter("brandIds", &req.BrandIDs, ",").
		BindWithDelimiter("energyClassIds", &req.EnergyClassIDs, ",").
		BindWithDelimiter("btuIds", &req.BTUIDs, ",").
		BindWithDelimiter("powerThresholds", &req.PowerThresholds, ",").
		Uint("productTypeId", &typeID).
		Float64("minPrice", &minPrice).
		Float64("maxPrice", &maxPrice).
		Bool("featured", &featured).
		Bool("onSale", &onSale).
		Bool("new", &isNew).
		Bool("inStock", &inStock).
		String("roomSize", &req.RoomSize).
		String("search", &req.SearchTerm).
		Int("page", &req.Page).
		Int("pageSize", &req.PageSize).
		String("sortBy", &req.SortBy).
		String("sortOrder", &req.SortOrder).
		BindError()
	if err != nil {
		return req, err
	}

	for name, v := range map[string]float64{"minPrice": minPrice, "maxPrice": maxPrice} {
		if !finite(v) {
			return req, fmt.Errorf("%s must be a finite number", name)
		}
	}
	for _, v := range req.PowerThresholds {
		if !finite(v) {
			return req, fmt.Errorf("powerThresholds must be finite numbers")
		}
	}

	if has(c, "productTypeId") {
		req.ProductTypeID = &typeID
	}
	if has(c, "minPrice") {
		req.PriceMin = &minPrice
	}
	if has(c, "maxPrice") {
		req.PriceMax = &maxPrice
	}
	if has(c, "featured") {
		req.IsFeatured = &featured
	}
	if has(c, "onSale") {
		req.IsOnSale = &onSale
	}
	if has(c, "new") {
		req.IsNew = &isNew
	}
	if has(c, "inStock") {
		req.InStock = &inStock
	}
	return req, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func has(c echo.Context, name string) bool {
	return c.QueryParam(name) != ""
}
