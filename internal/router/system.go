package router

import (
	"github.com/deppfellow/people-api/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes maps the endpoints that are not part of the people
// API itself.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)
}
