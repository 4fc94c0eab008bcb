// Package model holds the record types the API accepts and returns, the
// registry that validates raw input against them by schema name, and the
// merger that flattens several records into one response.
package model

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/deppfellow/people-api/internal/validation"
)

// Record is a validated instance of a schema.
type Record interface {
	// Schema is the name the record type is registered under.
	Schema() string

	// Fields is the record's output mapping. Write-only fields are never
	// part of it.
	Fields() map[string]any
}

const (
	SchemaPerson      = "person"
	SchemaLocation    = "location"
	SchemaPersonQuery = "person_query"
	SchemaPersonPath  = "person_path"
	SchemaLogin       = "login"
	SchemaContact     = "contact"
)

// schemas is fixed at init and only read afterwards.
var schemas = map[string]func() Record{
	SchemaPerson:      func() Record { return new(Person) },
	SchemaLocation:    func() Record { return new(Location) },
	SchemaPersonQuery: func() Record { return new(PersonQuery) },
	SchemaPersonPath:  func() Record { return new(PersonPath) },
	SchemaLogin:       func() Record { return new(LoginForm) },
	SchemaContact:     func() Record { return new(ContactForm) },
}

// Schemas returns the registered schema names in sorted order.
func Schemas() []string {
	return slices.Sorted(maps.Keys(schemas))
}

// Validate builds the record registered as schema from raw.
//
// It returns the record, or validation.Violations listing every violated
// field. An unknown schema name returns a plain error.
func Validate(schema string, raw map[string]any) (Record, error) {
	newRecord, ok := schemas[schema]
	if !ok {
		return nil, fmt.Errorf("unknown schema %q", schema)
	}

	record := newRecord()
	if violations := validation.Decode(raw, record); len(violations) > 0 {
		return nil, violations
	}
	return record, nil
}

// validateAs is Validate for callers that know the concrete record type.
func validateAs[T Record](schema string, raw map[string]any) (T, validation.Violations) {
	var zero T

	record, err := Validate(schema, raw)
	if err != nil {
		var violations validation.Violations
		if errors.As(err, &violations) {
			return zero, violations
		}
		panic(err)
	}
	return record.(T), nil
}

// Merge flattens records into one mapping. Later records overwrite earlier
// ones on key collision. Nothing is validated here.
func Merge(records ...Record) map[string]any {
	merged := make(map[string]any)
	for _, record := range records {
		maps.Copy(merged, record.Fields())
	}
	return merged
}

// value dereferences an optional field for a Fields mapping; an absent
// field becomes nil.
func value[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
