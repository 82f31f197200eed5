package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"climastore.GO/api"
	_ "climastore.GO/api/catalog"
	_ "climastore.GO/custom"
	"climastore.GO/model/entity"
)

func registryDB(t *testing.T) *gorm.DB {
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
	db.Create(&entity.Brand{ID: 1, Name: "Daikin"})
	db.Create(&entity.ProductType{ID: 1, Name: "Стенен климатик"})
	db.Create(&[]entity.Product{
		{ID: 1, SKU: "DK-9", Name: "Daikin Sensira 9", Price: 1200, IsActive: true, BrandID: 1, ProductTypeID: 1},
		{ID: 2, SKU: "DK-OLD", Name: "Daikin Old", Price: 800, IsActive: false, BrandID: 1, ProductTypeID: 1},
	})
	return db
}

func serve(e *echo.Echo, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestApplyModulesMountsCatalog(t *testing.T) {
	db := registryDB(t)
	e := echo.New()
	api.ApplyModules(e.Group("/api"), db)

	rec := serve(e, "/api/catalog/products")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("X-Total-Count"); got != "1" {
		t.Errorf("X-Total-Count = %q, want 1 (inactive product hidden)", got)
	}
	if rec := serve(e, "/api/catalog/products/1/card"); rec.Code != http.StatusOK {
		t.Errorf("card status = %d", rec.Code)
	}

	defer func() {
		if recover() == nil {
			t.Error("want panic when registering a module after ApplyModules")
		}
	}()
	api.RegisterModule(func(*echo.Group, *gorm.DB) {})
}

func TestApplyRoutesMountsHealth(t *testing.T) {
	db := registryDB(t)
	e := echo.New()
	api.ApplyRoutes(e, db)

	rec := serve(e, "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil || body["status"] != "ok" {
		t.Errorf("body = %s", rec.Body.String())
	}
}
