package handler

import (
	"github.com/deppfellow/people-api/internal/model"
	"github.com/deppfellow/people-api/internal/server"
	"github.com/deppfellow/people-api/internal/service"
	"github.com/labstack/echo/v4"
)

// FormHandler serves the URL-encoded form endpoints.
type FormHandler struct {
	Handler
	authService *service.AuthService
}

func NewFormHandler(s *server.Server, authService *service.AuthService) *FormHandler {
	return &FormHandler{
		Handler:     NewHandler(s),
		authService: authService,
	}
}

func (h *FormHandler) Login(c echo.Context, req *model.LoginRequest) (*model.LoginOut, error) {
	return h.authService.Login(c.Request().Context(), req.Form), nil
}

// Contact answers with the caller's User-Agent; JSON null when none was
// sent.
func (h *FormHandler) Contact(c echo.Context, req *model.ContactRequest) (*string, error) {
	return h.authService.Contact(c.Request().Context(), req.Form, req.UserAgent, req.Ads), nil
}
