package admin

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"climastore.GO/api"
	"climastore.GO/model/entity"
	"climastore.GO/model/repository/reference"
	catalogService "climastore.GO/service/catalog"
	productService "climastore.GO/service/product"
	"climastore.GO/service/search"
)

func init() {
	api.RegisterModule(RegisterAdminRoutes)
}

func RegisterAdminRoutes(apiGroup *echo.Group, db *gorm.DB) {
	Routes(apiGroup, db, reference.GetReferenceRepository(db), catalogService.NewService(db))
}

// Routes mounts the write endpoints under /admin. They sit behind the /api
// auth middleware.
func Routes(apiGroup *echo.Group, db *gorm.DB, refs *reference.ReferenceRepository, svc *catalogService.Service) {
	g := apiGroup.Group("/admin")

	// GET /api/admin/reference – current reference snapshot
	g.GET("/reference", func(c echo.Context) error {
		set, err := refs.Load(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, set)
	})

	rg := g.Group("/reference")
	referenceRoutes(rg, "/brands", refs, (*reference.ReferenceRepository).SaveBrand,
		func(b *entity.Brand, id uint) { b.ID = id },
		func(b *entity.Brand) string { return b.Name })
	referenceRoutes(rg, "/types", refs, (*reference.ReferenceRepository).SaveProductType,
		func(t *entity.ProductType, id uint) { t.ID = id },
		func(t *entity.ProductType) string { return t.Name })
	referenceRoutes(rg, "/btus", refs, (*reference.ReferenceRepository).SaveBTU,
		func(b *entity.BTU, id uint) { b.ID = id },
		func(b *entity.BTU) string { return b.Label })
	referenceRoutes(rg, "/energy-classes", refs, (*reference.ReferenceRepository).SaveEnergyClass,
		func(e *entity.EnergyClass, id uint) { e.ID = id },
		func(e *entity.EnergyClass) string { return e.Label })

	// POST /api/admin/products/import – JSON records, or a CSV body with Content-Type text/csv
	g.POST("/products/import", func(c echo.Context) error {
		return importProducts(c, db, refs)
	})

	// POST /api/admin/search/reindex
	g.POST("/search/reindex", func(c echo.Context) error {
		start := time.Now()
		n, err := svc.Reindex(c.Request().Context())
		if errors.Is(err, search.ErrNotConfigured) {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": err.Error()})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{
			"indexed":             n,
			"request_duration_ms": time.Since(start).Milliseconds(),
		})
	})
}

type saveFunc[T any] func(*reference.ReferenceRepository, context.Context, *T) error

// referenceRoutes adds POST path (create) and PUT path/:id (update) for one
// reference table. Both invalidate the reference cache through the repository.
func referenceRoutes[T any](g *echo.Group, path string, refs *reference.ReferenceRepository, save saveFunc[T], setID func(*T, uint), label func(*T) string) {
	g.POST(path, func(c echo.Context) error {
		row := new(T)
		if err := c.Bind(row); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		setID(row, 0)
		if strings.TrimSpace(label(row)) == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "name or label is required"})
		}
		if err := save(refs, c.Request().Context(), row); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, row)
	})

	g.PUT(path+"/:id", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil || id == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
		}
		ctx := c.Request().Context()
		exists, err := refs.Exists(ctx, new(T), uint(id))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		if !exists {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
		}
		row := new(T)
		if err := c.Bind(row); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		setID(row, uint(id))
		if strings.TrimSpace(label(row)) == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "name or label is required"})
		}
		if err := save(refs, ctx, row); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, row)
	})
}

func importProducts(c echo.Context, db *gorm.DB, refs *reference.ReferenceRepository) error {
	start := time.Now()
	ctx := c.Request().Context()

	var (
		res *productService.ImportResult
		err error
	)
	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), "text/csv") {
		opts := productService.ImportOptions{
			CreateReferences: c.QueryParam("create_references") == "true",
			DryRun:           c.QueryParam("dry_run") == "true",
		}
		res, err = productService.ImportCSV(ctx, db, refs, c.Request().Body, opts)
	} else {
		var body struct {
			Items            []productService.Record `json:"items"`
			CreateReferences bool                    `json:"create_references"`
			DryRun           bool                    `json:"dry_run"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if len(body.Items) == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "items array is required and must not be empty"})
		}
		opts := productService.ImportOptions{CreateReferences: body.CreateReferences, DryRun: body.DryRun}
		res, err = productService.ImportRecords(ctx, db, refs, body.Items, opts)
	}
	duration := time.Since(start).Milliseconds()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error(), "request_duration_ms": duration})
	}

	c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
	return c.JSON(http.StatusOK, echo.Map{
		"total":               res.TotalRows,
		"created":             res.Created,
		"updated":             res.Updated,
		"skipped":             res.Skipped,
		"attributes":          res.Attributes,
		"references_created":  res.ReferencesCreated,
		"warnings":            res.Warnings,
		"request_duration_ms": duration,
	})
}
