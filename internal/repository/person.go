package repository

import (
	"context"
	"slices"
)

// PersonRepository answers whether a person exists.
//
// The set is built once and never written afterwards, so concurrent reads
// need no locking.
type PersonRepository struct {
	known map[int]struct{}
}

// NewPersonRepository builds the repository from the known identifiers.
func NewPersonRepository(knownIDs []int) *PersonRepository {
	known := make(map[int]struct{}, len(knownIDs))
	for _, id := range knownIDs {
		known[id] = struct{}{}
	}
	return &PersonRepository{known: known}
}

// Exists reports whether id is a known person.
func (r *PersonRepository) Exists(_ context.Context, id int) bool {
	_, ok := r.known[id]
	return ok
}

// IDs returns the known identifiers in ascending order.
func (r *PersonRepository) IDs() []int {
	ids := make([]int, 0, len(r.known))
	for id := range r.known {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
