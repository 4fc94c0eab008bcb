package handler

import (
	"github.com/deppfellow/people-api/internal/model"
	"github.com/deppfellow/people-api/internal/server"
	"github.com/deppfellow/people-api/internal/service"
	"github.com/labstack/echo/v4"
)

type PersonHandler struct {
	Handler
	personService *service.PersonService
}

func NewPersonHandler(s *server.Server, personService *service.PersonService) *PersonHandler {
	return &PersonHandler{
		Handler:       NewHandler(s),
		personService: personService,
	}
}

func (h *PersonHandler) CreatePerson(c echo.Context, req *model.CreatePersonRequest) (*model.Person, error) {
	return h.personService.Create(c.Request().Context(), req.Person), nil
}

func (h *PersonHandler) ShowPerson(c echo.Context, req *model.PersonQueryRequest) (map[string]any, error) {
	return h.personService.Lookup(c.Request().Context(), req.Query), nil
}

func (h *PersonHandler) GetPerson(c echo.Context, req *model.PersonPathRequest) (map[string]string, error) {
	return h.personService.Detail(c.Request().Context(), req.Path)
}

func (h *PersonHandler) UpdatePerson(c echo.Context, req *model.UpdatePersonRequest) (map[string]any, error) {
	return h.personService.Update(c.Request().Context(), req.Path, req.Person)
}

func (h *PersonHandler) UpdatePersonLocation(c echo.Context, req *model.UpdatePersonLocationRequest) (map[string]any, error) {
	return h.personService.UpdateWithLocation(c.Request().Context(), req.Path, req.Person, req.Location), nil
}
