package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/babyzion/market/internal/logging"
	"github.com/babyzion/market/internal/service"
	"github.com/babyzion/market/internal/transport"
)

type CatalogHTTP struct {
	Svc *service.CatalogService
}

func (h *CatalogHTTP) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.list_products")

	items, err := h.Svc.ListProducts(ctx, c.QueryParam("category"))
	if err != nil {
		l.Error("list_products_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.Envelope{Success: false, Message: "cannot list products"})
	}

	return c.JSON(http.StatusOK, items)
}

func (h *CatalogHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.get_product")

	product, err := h.Svc.GetProduct(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("get_product_failed", "status", 404, "id", c.Param("id"))
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Product not found"})
		}
		l.Error("get_product_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.Envelope{Success: false, Message: "cannot get product"})
	}

	return c.JSON(http.StatusOK, product)
}

func (h *CatalogHTTP) ListCategories(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.list_categories")

	cats, err := h.Svc.ListCategories(ctx)
	if err != nil {
		l.Error("list_categories_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.Envelope{Success: false, Message: "cannot list categories"})
	}

	return c.JSON(http.StatusOK, cats)
}

// SyncFeed pulls a page of feed listings into the catalog. Absent feed
// credentials soft-fail with HTTP 200 so a storefront without the
// integration keeps running.
func (h *CatalogHTTP) SyncFeed(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.sync_feed")

	var req transport.SyncRequest
	// an empty body means defaults, matching the storefront client
	_ = c.Bind(&req)

	count, err := h.Svc.SyncFromFeed(ctx, req.Keyword, req.PageSize)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotConfigured), errors.Is(err, service.ErrNoResults):
			l.Warn("sync_feed_soft_fail", "status", 200, "reason", err.Error())
			return c.JSON(http.StatusOK, transport.Envelope{
				Success: false,
				Message: "No products found or CJ API not configured",
				Hint:    "Set CJ_EMAIL and CJ_API_KEY environment variables",
			})
		default:
			l.Error("sync_feed_error", "status", 500, "error", err)
			return c.JSON(http.StatusInternalServerError, transport.Envelope{Success: false, Message: "feed sync failed"})
		}
	}

	l.Info("sync_feed_success", "count", count)
	return c.JSON(http.StatusOK, transport.SyncResponse{
		Success: true,
		Message: fmt.Sprintf("Synced %d products from CJ Dropshipping", count),
		Count:   count,
	})
}
