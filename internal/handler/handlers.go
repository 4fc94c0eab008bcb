// Package handler is the first layer after the router.
//
// It declares which request sources each endpoint reads, lets the
// validation package turn them into records, calls the service layer and
// shapes the response.
package handler

import (
	"github.com/deppfellow/people-api/internal/server"
	"github.com/deppfellow/people-api/internal/service"
)

// Handlers groups every HTTP handler so the router receives one value.
type Handlers struct {
	Home     *HomeHandler
	Person   *PersonHandler
	Location *LocationHandler
	Form     *FormHandler
	Upload   *UploadHandler
	Health   *HealthHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Home:     NewHomeHandler(s),
		Person:   NewPersonHandler(s, services.Person),
		Location: NewLocationHandler(s, services.Person),
		Form:     NewFormHandler(s, services.Auth),
		Upload:   NewUploadHandler(s, services.Upload),
		Health:   NewHealthHandler(s, services.Person),
	}
}
