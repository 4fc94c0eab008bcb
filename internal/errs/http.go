package errs

import "strings"

// FieldError is one field-level violation inside an error envelope.
// Example:
//
//	{ "field": "age", "kind": "range", "error": "must not exceed 115" }
type FieldError struct {
	// Field is the input key the violation relates to (e.g. "email",
	// or "person.age" for a record embedded in a multi-schema body).
	Field string `json:"field"`

	// Kind is the machine-readable reason: missing, length, range,
	// enum, format or type.
	Kind string `json:"kind"`

	// Error is the human-readable message. It never echoes the value.
	Error string `json:"error"`
}

// ActionType is a string-based enum describing what the client should do.
type ActionType string

const (
	// ActionTypeRedirect tells the client it should redirect somewhere.
	ActionTypeRedirect ActionType = "redirect"
)

// Action describes an optional instruction for the client.
type Action struct {
	Type    ActionType `json:"type"`
	Message string     `json:"message"`
	Value   string     `json:"value"`
}

// HTTPError is the error type every handler returns to the client.
//
// Fields:
//   - Code: machine-friendly error code (e.g. "UNPROCESSABLE_ENTITY").
//   - Message: human-friendly message.
//   - Status: HTTP status code.
//   - Override: whether the client may show Message as-is.
//   - Errors: field-level violations (validation failures).
//   - Action: client instruction (optional).
type HTTPError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Status   int    `json:"status"`
	Override bool   `json:"override"`

	Errors []FieldError `json:"errors"`

	Action *Action `json:"action"`
}

// Error makes *HTTPError satisfy the error interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError. Code and Status are not
// compared.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// WithMessage returns a copy of e with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:     e.Code,
		Message:  message,
		Status:   e.Status,
		Override: e.Override,
		Errors:   e.Errors,
		Action:   e.Action,
	}
}

// MakeUpperCaseWithUnderscores converts a string into UPPER_CASE_WITH_UNDERSCORES.
//
//	"Unprocessable Entity" -> "UNPROCESSABLE_ENTITY"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
