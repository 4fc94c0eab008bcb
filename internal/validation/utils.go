package validation

import (
	"errors"

	"github.com/deppfellow/people-api/internal/errs"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payloads.
//
// Typical pattern:
//   - Declare the payload struct with one field per schema the endpoint takes.
//   - Implement Validate(c) to pull the raw values out of their sources
//     (Path, Query, Body, Form, Header, Cookie) and run Decode on each.
//   - Return the combined Violations, or an *errs.HTTPError for input that
//     could not be read at all.
type Validatable interface {
	Validate(c echo.Context) error
}

// BindAndValidate runs payload.Validate and converts the outcome into the
// error the global handler expects:
//   - Violations become a 422 with one field error per violation.
//   - *errs.HTTPError (malformed body, ...) is returned unchanged.
func BindAndValidate(c echo.Context, payload Validatable) error {
	err := payload.Validate(c)
	if err == nil {
		return nil
	}

	var violations Violations
	if errors.As(err, &violations) {
		return errs.ValidationError(violations.FieldErrors())
	}

	return err
}
