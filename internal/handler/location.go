package handler

import (
	"github.com/deppfellow/people-api/internal/model"
	"github.com/deppfellow/people-api/internal/server"
	"github.com/deppfellow/people-api/internal/service"
	"github.com/labstack/echo/v4"
)

type LocationHandler struct {
	Handler
	personService *service.PersonService
}

func NewLocationHandler(s *server.Server, personService *service.PersonService) *LocationHandler {
	return &LocationHandler{
		Handler:       NewHandler(s),
		personService: personService,
	}
}

func (h *LocationHandler) UpdateLocation(c echo.Context, req *model.UpdateLocationRequest) (*model.Location, error) {
	return h.personService.UpdateLocation(c.Request().Context(), req.Path, req.Location), nil
}
