package model

import (
	"errors"
	"mime/multipart"

	"github.com/deppfellow/people-api/internal/validation"
	"github.com/labstack/echo/v4"
)

// Request payloads. Each one declares where its values come from and runs
// them through the schema registry. Violations from every source are
// collected before returning, so a client sees all problems at once.

// CreatePersonRequest is POST /person/new: a Person body.
type CreatePersonRequest struct {
	Person *Person
}

func (r *CreatePersonRequest) Validate(c echo.Context) error {
	body, err := validation.Body(c)
	if err != nil {
		return err
	}

	var violations validation.Violations
	r.Person, violations = validateAs[*Person](SchemaPerson, body)
	return violations.Err()
}

// PersonQueryRequest is GET /person/detail: name and age from the query.
type PersonQueryRequest struct {
	Query *PersonQuery
}

func (r *PersonQueryRequest) Validate(c echo.Context) error {
	var violations validation.Violations
	r.Query, violations = validateAs[*PersonQuery](SchemaPersonQuery, validation.Query(c))
	return violations.Err()
}

// PersonPathRequest is GET /person/detail/:id.
type PersonPathRequest struct {
	Path *PersonPath
}

func (r *PersonPathRequest) Validate(c echo.Context) error {
	var violations validation.Violations
	r.Path, violations = validateAs[*PersonPath](SchemaPersonPath, validation.Path(c, "id"))
	return violations.Err()
}

// UpdatePersonRequest is PUT /person/:id: path id and a Person body.
type UpdatePersonRequest struct {
	Path   *PersonPath
	Person *Person
}

func (r *UpdatePersonRequest) Validate(c echo.Context) error {
	body, err := validation.Body(c)
	if err != nil {
		return err
	}

	var all, violations validation.Violations

	r.Path, violations = validateAs[*PersonPath](SchemaPersonPath, validation.Path(c, "id"))
	all = append(all, violations...)

	r.Person, violations = validateAs[*Person](SchemaPerson, body)
	all = append(all, violations...)

	return all.Err()
}

// UpdatePersonLocationRequest is PUT /person-location/:id: path id and a
// body embedding both a person and a location.
type UpdatePersonLocationRequest struct {
	Path     *PersonPath
	Person   *Person
	Location *Location
}

func (r *UpdatePersonLocationRequest) Validate(c echo.Context) error {
	body, err := validation.Body(c)
	if err != nil {
		return err
	}

	var all, violations validation.Violations

	r.Path, violations = validateAs[*PersonPath](SchemaPersonPath, validation.Path(c, "id"))
	all = append(all, violations...)

	if raw, embedded := validation.Embedded(body, SchemaPerson); embedded != nil {
		all = append(all, embedded...)
	} else {
		r.Person, violations = validateAs[*Person](SchemaPerson, raw)
		all = append(all, violations.Prefix(SchemaPerson)...)
	}

	if raw, embedded := validation.Embedded(body, SchemaLocation); embedded != nil {
		all = append(all, embedded...)
	} else {
		r.Location, violations = validateAs[*Location](SchemaLocation, raw)
		all = append(all, violations.Prefix(SchemaLocation)...)
	}

	return all.Err()
}

// UpdateLocationRequest is PUT /location/:id: path id and a Location body.
type UpdateLocationRequest struct {
	Path     *PersonPath
	Location *Location
}

func (r *UpdateLocationRequest) Validate(c echo.Context) error {
	body, err := validation.Body(c)
	if err != nil {
		return err
	}

	var all, violations validation.Violations

	r.Path, violations = validateAs[*PersonPath](SchemaPersonPath, validation.Path(c, "id"))
	all = append(all, violations...)

	r.Location, violations = validateAs[*Location](SchemaLocation, body)
	all = append(all, violations...)

	return all.Err()
}

// LoginRequest is POST /login: a username/password form.
type LoginRequest struct {
	Form *LoginForm
}

func (r *LoginRequest) Validate(c echo.Context) error {
	form, err := validation.Form(c)
	if err != nil {
		return err
	}

	var violations validation.Violations
	r.Form, violations = validateAs[*LoginForm](SchemaLogin, form)
	return violations.Err()
}

// ContactRequest is POST /contact: a contact form plus the optional
// User-Agent header and ads cookie.
type ContactRequest struct {
	Form      *ContactForm
	UserAgent *string
	Ads       *string
}

func (r *ContactRequest) Validate(c echo.Context) error {
	form, err := validation.Form(c)
	if err != nil {
		return err
	}

	r.UserAgent = validation.Header(c, "User-Agent")
	r.Ads = validation.Cookie(c, "ads")

	var violations validation.Violations
	r.Form, violations = validateAs[*ContactForm](SchemaContact, form)
	return violations.Err()
}

// ImageUploadRequest is POST /post-image: one multipart file named image.
type ImageUploadRequest struct {
	Image *multipart.FileHeader
}

func (r *ImageUploadRequest) Validate(c echo.Context) error {
	image, err := c.FormFile("image")
	if err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return err
		}
		return validation.Violations{{Field: "image", Kind: validation.KindMissing, Message: "is required"}}
	}

	r.Image = image
	return nil
}
