package service

import (
	"context"
	"strconv"

	"github.com/deppfellow/people-api/internal/errs"
	"github.com/deppfellow/people-api/internal/model"
	"github.com/deppfellow/people-api/internal/repository"
	"github.com/deppfellow/people-api/internal/server"
)

// PersonNotFoundMessage is returned for ids outside the known set.
const PersonNotFoundMessage = "This person doesn't exist!"

// PersonFoundMessage is the detail response value for a known id.
const PersonFoundMessage = "It exist!"

type PersonService struct {
	server *server.Server
	repo   *repository.PersonRepository
}

func NewPersonService(s *server.Server, repo *repository.PersonRepository) *PersonService {
	return &PersonService{
		server: s,
		repo:   repo,
	}
}

// EnsureExists fails with a 404 unless id is a known person.
func (ps *PersonService) EnsureExists(ctx context.Context, id int) error {
	if !ps.repo.Exists(ctx, id) {
		return errs.NewNotFoundError(PersonNotFoundMessage, true, nil)
	}
	return nil
}

// KnownIDs lists the identifiers that exist, in ascending order.
func (ps *PersonService) KnownIDs() []int {
	return ps.repo.IDs()
}

// Create echoes the validated person back. Nothing is stored.
func (ps *PersonService) Create(_ context.Context, p *model.Person) *model.Person {
	return p
}

// Lookup maps the query's key onto its age: the name when one was given,
// "null" otherwise.
func (ps *PersonService) Lookup(_ context.Context, q *model.PersonQuery) map[string]any {
	return map[string]any{q.Key(): *q.Age}
}

// Detail reports that a known person exists.
func (ps *PersonService) Detail(ctx context.Context, path *model.PersonPath) (map[string]string, error) {
	if err := ps.EnsureExists(ctx, *path.ID); err != nil {
		return nil, err
	}
	return map[string]string{strconv.Itoa(*path.ID): PersonFoundMessage}, nil
}

// Update merges the path id into the person for a known id.
func (ps *PersonService) Update(ctx context.Context, path *model.PersonPath, p *model.Person) (map[string]any, error) {
	if err := ps.EnsureExists(ctx, *path.ID); err != nil {
		return nil, err
	}

	loggerFor(ctx, ps.server).Debug().
		Int("person_id", *path.ID).
		Msg("updating person")

	return model.Merge(path, p), nil
}

// UpdateWithLocation merges a person and a location. The id is only
// validated, never looked up.
func (ps *PersonService) UpdateWithLocation(_ context.Context, _ *model.PersonPath, p *model.Person, l *model.Location) map[string]any {
	return model.Merge(p, l)
}

// UpdateLocation echoes the validated location back.
func (ps *PersonService) UpdateLocation(_ context.Context, _ *model.PersonPath, l *model.Location) *model.Location {
	return l
}
