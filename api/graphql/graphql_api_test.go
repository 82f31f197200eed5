package graphql

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"climastore.GO/core/cache"
	"climastore.GO/graphqlserver"
	"climastore.GO/model/entity"
	productRepo "climastore.GO/model/repository/product"
	"climastore.GO/model/repository/reference"
	"climastore.GO/service/catalog"
	"climastore.GO/service/search"
)

func setupGraphQL(t *testing.T) *echo.Echo {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}
	if err := db.AutoMigrate(entity.AllModels()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	btu := uint(1)
	db.Create(&entity.Brand{ID: 1, Name: "Daikin"})
	db.Create(&entity.ProductType{ID: 1, Name: "Стенен климатик"})
	db.Create(&entity.BTU{ID: 1, Label: "12000 BTU"})
	db.Create(&[]entity.Product{
		{
			ID: 1, SKU: "DK-12", Name: "Daikin Comfora 12", Price: 1650, StockQuantity: 2, IsActive: true, IsOnSale: true,
			BrandID: 1, ProductTypeID: 1, BTUID: &btu,
			Attributes: []entity.ProductAttribute{
				{AttributeKey: "Мощност", AttributeValue: "3.5 kW", DisplayOrder: 1, IsVisible: true},
				{AttributeKey: "Енергиен клас", AttributeValue: "A++", DisplayOrder: 2, IsVisible: true},
			},
		},
		{ID: 2, SKU: "DK-9", Name: "Daikin Sensira 9", Price: 1200, IsActive: true, BrandID: 1, ProductTypeID: 1},
	})

	svc := &catalog.Service{
		Engine:   catalog.NewEngine(catalog.NewProjector(1.95583, "EUR", ""), 50),
		Products: productRepo.NewProductRepository(db),
		Refs:     reference.NewReferenceRepository(db, cache.NewCache(), nil, time.Minute),
		Search:   search.NewSearchService("", "test"),
	}
	schema, err := graphqlserver.NewSchemaWithService(svc)
	if err != nil {
		t.Fatalf("schema: %v", err)
	}
	e := echo.New()
	RegisterGraphQLRoutesWithSchema(e, schema)
	return e
}

type gqlResponse struct {
	Data   map[string]json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func query(t *testing.T, e *echo.Echo, q string, vars map[string]interface{}) gqlResponse {
	t.Helper()
	body, _ := json.Marshal(map[string]interface{}{"query": q, "variables": vars})
	req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var out gqlResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v\n%s", err, rec.Body.String())
	}
	return out
}

func TestProductsQuery(t *testing.T) {
	e := setupGraphQL(t)
	out := query(t, e, `query($f: ProductFilter) {
		products(filter: $f, sortBy: "price", sortOrder: "asc") {
			totalCount currentPage pageSize totalPages
			items { id title brand price priceSecondary btu btuK badges specs { field label value unit } }
		}
	}`, map[string]interface{}{"f": map[string]interface{}{"brandIds": []int{1}}})
	if len(out.Errors) > 0 {
		t.Fatalf("errors: %v", out.Errors)
	}

	var page struct {
		TotalCount  int
		CurrentPage int
		PageSize    int
		TotalPages  int
		Items       []struct {
			ID     string
			Title  string
			Brand  string
			Price  float64
			Btu    *float64
			BtuK   *int
			Badges []string
			Specs  []struct{ Field, Label, Value, Unit string }
		}
	}
	if err := json.Unmarshal(out.Data["products"], &page); err != nil {
		t.Fatal(err)
	}
	if page.TotalCount != 2 || page.PageSize != 12 || page.CurrentPage != 1 || page.TotalPages != 1 {
		t.Errorf("paging = %+v", page)
	}
	if len(page.Items) != 2 || page.Items[0].ID != "2" {
		t.Fatalf("items = %+v", page.Items)
	}
	comfora := page.Items[1]
	if comfora.Brand != "Daikin" || len(comfora.Badges) != 1 || comfora.Badges[0] != "ПРОМО" {
		t.Errorf("card = %+v", comfora)
	}
	if comfora.Btu == nil || *comfora.Btu != 12000 || comfora.BtuK == nil || *comfora.BtuK != 12 {
		t.Errorf("btu = %v / %v, want 12000 / 12", comfora.Btu, comfora.BtuK)
	}
	if page.Items[0].Btu != nil || page.Items[0].BtuK != nil {
		t.Errorf("card without BTU reports %v / %v", page.Items[0].Btu, page.Items[0].BtuK)
	}
	if len(comfora.Specs) != 2 || comfora.Specs[0].Value != "3.5" || comfora.Specs[1].Value != "A++" {
		t.Errorf("specs = %+v", comfora.Specs)
	}
}

func TestProductsQueryUnknownIDsMatchNothing(t *testing.T) {
	e := setupGraphQL(t)
	for _, f := range []map[string]interface{}{
		{"brandIds": []int{0}},
		{"brandIds": []int{-1}},
		{"btuIds": []int{0, -7}},
		{"productTypeId": -2},
	} {
		out := query(t, e, `query($f: ProductFilter) { products(filter: $f) { totalCount items { id } } }`,
			map[string]interface{}{"f": f})
		if len(out.Errors) > 0 {
			t.Fatalf("%v: errors %v", f, out.Errors)
		}
		var page struct {
			TotalCount int
			Items      []struct{ ID string }
		}
		if err := json.Unmarshal(out.Data["products"], &page); err != nil {
			t.Fatal(err)
		}
		if page.TotalCount != 0 || len(page.Items) != 0 {
			t.Errorf("%v: totalCount = %d, want 0", f, page.TotalCount)
		}
	}
}

func TestProductsQueryInvalidPage(t *testing.T) {
	e := setupGraphQL(t)
	out := query(t, e, `{ products(page: 0) { totalCount } }`, nil)
	if len(out.Errors) == 0 {
		t.Fatal("want an error for page 0")
	}
}

func TestCardQuery(t *testing.T) {
	e := setupGraphQL(t)
	out := query(t, e, `{ a: card(id: "1") { sku inStock } b: card(id: "99") { sku } }`, nil)
	if len(out.Errors) > 0 {
		t.Fatalf("errors: %v", out.Errors)
	}
	if string(out.Data["b"]) != "null" {
		t.Errorf("unknown card = %s, want null", out.Data["b"])
	}
	var a struct {
		SKU     string
		InStock bool
	}
	json.Unmarshal(out.Data["a"], &a)
	if a.SKU != "DK-12" || !a.InStock {
		t.Errorf("card = %+v", a)
	}
}

func TestFacetsAndSearchQuery(t *testing.T) {
	e := setupGraphQL(t)
	out := query(t, e, `{
		facets { totalCount priceMin priceMax brands { id label count } roomSizes { label count } powerThresholds }
		search(query: "sensira") { totalCount items { id } }
	}`, nil)
	if len(out.Errors) > 0 {
		t.Fatalf("errors: %v", out.Errors)
	}
	var f struct {
		TotalCount      int
		PriceMin        float64
		PriceMax        float64
		Brands          []struct{ ID, Count int }
		PowerThresholds []float64
	}
	json.Unmarshal(out.Data["facets"], &f)
	if f.TotalCount != 2 || f.PriceMin != 1200 || f.PriceMax != 1650 {
		t.Errorf("facets = %+v", f)
	}
	if len(f.Brands) != 1 || f.Brands[0].Count != 2 {
		t.Errorf("brands = %+v", f.Brands)
	}
	if len(f.PowerThresholds) != 1 || f.PowerThresholds[0] != 3.5 {
		t.Errorf("power thresholds = %v", f.PowerThresholds)
	}

	var s struct {
		TotalCount int
		Items      []struct{ ID string }
	}
	json.Unmarshal(out.Data["search"], &s)
	if s.TotalCount != 1 || s.Items[0].ID != "2" {
		t.Errorf("search = %+v", s)
	}
}

func TestPlayground(t *testing.T) {
	e := setupGraphQL(t)
	req := httptest.NewRequest(http.MethodGet, "/playground", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || !bytes.Contains(rec.Body.Bytes(), []byte("GraphQLPlayground")) {
		t.Errorf("playground: status %d", rec.Code)
	}
}
