package middleware

// The site's browser frontend is served from a different origin than the
// API, so every response carries a permissive Access-Control-Allow-Origin
// header.  Preflight OPTIONS requests are answered by dedicated route
// handlers that additionally advertise the allowed methods.

import (
	"github.com/labstack/echo/v4"
)

// CORS returns middleware that stamps Access-Control-Allow-Origin: * on
// every response, including framework-generated errors such as 404 and
// 405, because the header map is populated before the handler runs.
func CORS() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderAccessControlAllowOrigin, "*")
			return next(c)
		}
	}
}
