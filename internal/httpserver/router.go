package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/babyzion/market/internal/middleware/ratelimit"
)

type Deps struct {
	Catalog *CatalogHTTP
	Order   *OrderHTTP
	Upload  *UploadHTTP
	Payment *PaymentHTTP

	// OrderRateStore limits checkout submissions per client address;
	// nil disables the policy (tests, payments-only deployments).
	OrderRateStore *ratelimit.FixedWindowStore
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")

	api.GET("/products", d.Catalog.ListProducts)
	api.GET("/products/:id", d.Catalog.GetProduct)
	api.GET("/categories", d.Catalog.ListCategories)
	api.POST("/cj/sync", d.Catalog.SyncFeed)

	var orderMW []echo.MiddlewareFunc
	if d.OrderRateStore != nil {
		orderMW = append(orderMW, echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
			Store: d.OrderRateStore,
		}))
	}
	api.POST("/orders", d.Order.CreateOrder, orderMW...)
	api.GET("/orders/:id", d.Order.GetOrder)
	api.PATCH("/orders/:id/status", d.Order.UpdateStatus)

	api.POST("/paystack/initialize", d.Payment.PaystackInitialize)
	api.POST("/paypal/create-order", d.Payment.PayPalCreateOrder)
	api.POST("/paypal/capture-order/:order_id", d.Payment.PayPalCaptureOrder)

	api.GET("/uploads", d.Upload.ListUploads)
	api.POST("/uploads", d.Upload.CreateUpload)
}
