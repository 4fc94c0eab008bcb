package validation

import (
	"github.com/deppfellow/people-api/internal/errs"
)

// Kind is the machine-readable reason a field was rejected.
type Kind string

const (
	KindMissing Kind = "missing"
	KindLength  Kind = "length"
	KindRange   Kind = "range"
	KindEnum    Kind = "enum"
	KindFormat  Kind = "format"
	KindType    Kind = "type"
)

// Violation is a single constraint failure on one field.
type Violation struct {
	Field   string
	Kind    Kind
	Message string
}

// Violations is the full list of failures of one validation call.
// It satisfies error so it can travel through ordinary error returns.
type Violations []Violation

func (v Violations) Error() string {
	return "Validation failed"
}

// Err returns v as an error, or nil when there are no violations.
func (v Violations) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// Prefix qualifies every field with scope ("person" + "age" -> "person.age").
// Used for records embedded in a multi-schema body.
func (v Violations) Prefix(scope string) Violations {
	if scope == "" || len(v) == 0 {
		return v
	}

	out := make(Violations, len(v))
	for i, violation := range v {
		violation.Field = scope + "." + violation.Field
		out[i] = violation
	}
	return out
}

// Has reports whether any violation names field.
func (v Violations) Has(field string) bool {
	for _, violation := range v {
		if violation.Field == field {
			return true
		}
	}
	return false
}

// FieldErrors converts v into the envelope's field-level errors.
func (v Violations) FieldErrors() []errs.FieldError {
	fieldErrors := make([]errs.FieldError, 0, len(v))
	for _, violation := range v {
		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: violation.Field,
			Kind:  string(violation.Kind),
			Error: violation.Message,
		})
	}
	return fieldErrors
}
