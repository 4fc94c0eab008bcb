package validation

import (
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/deppfellow/people-api/internal/errs"
	"github.com/labstack/echo/v4"
)

// Path returns the named path parameters as a raw mapping.
func Path(c echo.Context, names ...string) map[string]any {
	raw := make(map[string]any, len(names))
	for _, name := range names {
		if value := c.Param(name); value != "" {
			raw[name] = value
		}
	}
	return raw
}

// Query returns the query string as a raw mapping. Only the first value of
// a repeated key is kept.
func Query(c echo.Context) map[string]any {
	return firstValues(c.QueryParams())
}

// Form returns URL-encoded or multipart form fields as a raw mapping.
func Form(c echo.Context) (map[string]any, error) {
	values, err := c.FormParams()
	if err != nil {
		return nil, errs.NewBadRequestError("Request body must be a valid form", false, nil, nil, nil)
	}
	return firstValues(values), nil
}

// Body decodes the JSON request body into a raw mapping. An empty body
// yields an empty mapping so every required field is reported missing.
func Body(c echo.Context) (map[string]any, error) {
	raw := make(map[string]any)

	req := c.Request()
	if req.ContentLength == 0 {
		return raw, nil
	}

	if err := c.Echo().JSONSerializer.Deserialize(c, &raw); err != nil {
		if errors.Is(err, io.EOF) {
			return raw, nil
		}

		var he *echo.HTTPError
		if errors.As(err, &he) && he.Code == http.StatusRequestEntityTooLarge {
			return nil, err
		}
		return nil, errs.NewBadRequestError("Request body must be a valid JSON object", false, nil, nil, nil)
	}

	return raw, nil
}

// Embedded returns the object stored under key in a multi-schema body.
// A missing key yields an empty mapping; a non-object value is reported as
// a type violation on key.
func Embedded(body map[string]any, key string) (map[string]any, Violations) {
	value, ok := body[key]
	if !ok || value == nil {
		return map[string]any{}, nil
	}

	object, ok := value.(map[string]any)
	if !ok {
		return nil, Violations{{Field: key, Kind: KindType, Message: "must be an object"}}
	}
	return object, nil
}

// Header returns the named request header, or nil when it was not sent.
func Header(c echo.Context, name string) *string {
	values := c.Request().Header.Values(name)
	if len(values) == 0 {
		return nil
	}
	return &values[0]
}

// Cookie returns the named cookie value, or nil when it was not sent.
func Cookie(c echo.Context, name string) *string {
	cookie, err := c.Cookie(name)
	if err != nil {
		return nil
	}
	return &cookie.Value
}

func firstValues(values url.Values) map[string]any {
	raw := make(map[string]any, len(values))
	for key, v := range values {
		if len(v) > 0 {
			raw[key] = v[0]
		}
	}
	return raw
}
