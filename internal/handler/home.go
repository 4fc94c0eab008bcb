package handler

import (
	"net/http"

	"github.com/deppfellow/people-api/internal/server"
	"github.com/labstack/echo/v4"
)

type HomeHandler struct {
	Handler
}

func NewHomeHandler(s *server.Server) *HomeHandler {
	return &HomeHandler{
		Handler: NewHandler(s),
	}
}

func (h *HomeHandler) Home(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"hello": "world"})
}
