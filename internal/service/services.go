// Package service contains the business logic.
//
// It sits between the handler and repository layers. It receives
// validated records from the handler, applies the existence rule and the
// merge rules, and calls repository methods to reach the data.
package service

import (
	"context"

	"github.com/deppfellow/people-api/internal/repository"
	"github.com/deppfellow/people-api/internal/server"
	"github.com/rs/zerolog"
)

type Services struct {
	Person *PersonService
	Auth   *AuthService
	Upload *UploadService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Person: NewPersonService(s, repos.Person),
		Auth:   NewAuthService(s),
		Upload: NewUploadService(s),
	}, nil
}

// loggerFor returns the request-scoped logger stored in ctx, falling back
// to the application logger outside a request.
func loggerFor(ctx context.Context, s *server.Server) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return s.Logger
}
