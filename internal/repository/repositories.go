// Package repository handles access to stored data.
//
// There is no database yet: the person table is a fixed set of known
// identifiers taken from configuration. Repositories keep the same shape a
// real data layer would have, so services do not change when one arrives.
package repository

import (
	"github.com/deppfellow/people-api/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Person *PersonRepository
}

// NewRepositories constructs the repository container from the server's
// configuration.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Person: NewPersonRepository(s.Config.Registry.KnownIDs),
	}
}
