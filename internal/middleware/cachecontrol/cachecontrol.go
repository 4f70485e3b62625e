package cachecontrol

import "github.com/labstack/echo/v4"

// NoStore disables client caching outside production, matching the
// storefront's development behavior.
func NoStore(production bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !production {
				h := c.Response().Header()
				h.Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
				h.Set("Pragma", "no-cache")
				h.Set("Expires", "0")
			}
			return next(c)
		}
	}
}
