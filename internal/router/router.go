package router // package router defines how HTTP routes are registered for the API

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/avelichko/consult-api/internal/handler" // import the handlers that implement business logic
)

// RegisterRoutes registers every route the API exposes.  Each endpoint
// group gets an explicit OPTIONS route for the browser preflight; any
// other verb falls through to Echo's method-not-allowed handling, which
// HTTPErrorHandler shapes into the {"error": ...} contract.
func RegisterRoutes(e *echo.Echo, a *handler.AppointmentHandler, ct *handler.ContactHandler, p *handler.ProgressHandler) {
	// Health check for load balancers and monitoring.
	e.GET("/healthz", handler.Health)

	v1 := e.Group("/v1")

	v1.POST("/appointments", a.Create)
	v1.GET("/appointments", a.List)
	v1.OPTIONS("/appointments", handler.Preflight("GET, POST, OPTIONS"))

	v1.POST("/contact", ct.Create)
	v1.OPTIONS("/contact", handler.Preflight("POST, OPTIONS"))

	v1.POST("/progress", p.Record)
	v1.GET("/progress", p.History)
	v1.OPTIONS("/progress", handler.Preflight("GET, POST, OPTIONS"))
}

// HTTPErrorHandler converts framework-level errors (unknown routes,
// unsupported methods, malformed requests) into the JSON error shape
// the rest of the API uses.  Handler-level errors never reach it; the
// handlers respond directly.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	msg := err.Error()
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if s, ok := he.Message.(string); ok {
			msg = s
		} else {
			msg = http.StatusText(code)
		}
	}
	if code == http.StatusMethodNotAllowed {
		msg = "Method not allowed"
	}
	_ = c.JSON(code, echo.Map{"error": msg})
}
