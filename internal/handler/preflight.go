package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Preflight returns a handler for the OPTIONS cross-origin check.  It
// answers 200 with an empty body and advertises the methods the route
// accepts plus the Content-Type header the browser will send.  The
// Access-Control-Allow-Origin header is stamped by the CORS middleware.
func Preflight(allowMethods string) echo.HandlerFunc {
	return func(c echo.Context) error {
		h := c.Response().Header()
		h.Set(echo.HeaderAccessControlAllowMethods, allowMethods)
		h.Set(echo.HeaderAccessControlAllowHeaders, "Content-Type")
		return c.NoContent(http.StatusOK)
	}
}
