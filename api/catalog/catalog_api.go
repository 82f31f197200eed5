package catalog

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"climastore.GO/api"
	"climastore.GO/config"
	"climastore.GO/core/logger"
	"climastore.GO/core/metrics"
	catalogService "climastore.GO/service/catalog"
)

func init() {
	api.RegisterModule(RegisterCatalogRoutes)
}

func RegisterCatalogRoutes(apiGroup *echo.Group, db *gorm.DB) {
	Routes(apiGroup, catalogService.NewService(db), config.App().DefaultPageSize)
}

// Routes mounts the storefront endpoints under /catalog.
func Routes(apiGroup *echo.Group, svc *catalogService.Service, defaultPageSize int) {
	h := &handler{svc: svc, defaultPageSize: defaultPageSize}
	g := apiGroup.Group("/catalog")

	// GET /api/catalog/products?brandIds=1&brandIds=2&sortBy=price&sortOrder=desc
	g.GET("/products", h.products)
	// GET /api/catalog/products/:id/card
	g.GET("/products/:id/card", h.card)
	// GET /api/catalog/facets
	g.GET("/facets", h.facets)
	// GET /api/catalog/search?q=daikin
	g.GET("/search", h.search)
}

type handler struct {
	svc             *catalogService.Service
	defaultPageSize int
}

func (h *handler) products(c echo.Context) error {
	start := time.Now()
	req, err := BindFilterRequest(c, h.defaultPageSize)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	res, err := h.svc.Query(c.Request().Context(), req)
	if err != nil {
		return queryError(c, err)
	}
	metrics.ObserveQuery("rest", start)
	return writePage(c, res)
}

func (h *handler) search(c echo.Context) error {
	start := time.Now()
	req, err := BindFilterRequest(c, h.defaultPageSize)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	res, err := h.svc.SearchQuery(c.Request().Context(), c.QueryParam("q"), req)
	if err != nil {
		return queryError(c, err)
	}
	metrics.ObserveQuery("search", start)
	return writePage(c, res)
}

func (h *handler) card(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
	}
	card, err := h.svc.Card(c.Request().Context(), uint(id))
	if errors.Is(err, catalogService.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	}
	if err != nil {
		return queryError(c, err)
	}
	return c.JSON(http.StatusOK, card)
}

func (h *handler) facets(c echo.Context) error {
	f, err := h.svc.Facets(c.Request().Context())
	if err != nil {
		return queryError(c, err)
	}
	return c.JSON(http.StatusOK, f)
}

func queryError(c echo.Context, err error) error {
	if errors.Is(err, catalogService.ErrInvalidPage) || errors.Is(err, catalogService.ErrInvalidPageSize) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	logger.L().Error("catalog query failed", zap.String("path", c.Path()), zap.Error(err))
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
}

func writePage(c echo.Context, res catalogService.PageResult) error {
	hdr := c.Response().Header()
	hdr.Set("X-Total-Count", strconv.Itoa(res.TotalCount))
	hdr.Set("X-Page", strconv.Itoa(res.CurrentPage))
	hdr.Set("X-PageSize", strconv.Itoa(res.PageSize))
	hdr.Set("X-Total-Pages", strconv.Itoa(res.TotalPages))
	return c.JSON(http.StatusOK, res)
}
