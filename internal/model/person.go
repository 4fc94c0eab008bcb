package model

import "strconv"

// HairColor is the closed set of hair colors a Person may declare.
type HairColor string

const (
	HairColorWhite  HairColor = "white"
	HairColorBlack  HairColor = "black"
	HairColorBrown  HairColor = "brown"
	HairColorBlonde HairColor = "blonde"
)

// Person is the main record of the API.
//
// Fields are pointers: nil means the key was absent from the input. After
// a successful Validate every required field is non-nil. Password is
// write-only; it is accepted on input and never serialized.
type Person struct {
	FirstName *string    `json:"first_name" mapstructure:"first_name" validate:"required,min=1,max=50"`
	LastName  *string    `json:"last_name" mapstructure:"last_name" validate:"required,min=1,max=50"`
	Age       *int       `json:"age" mapstructure:"age" validate:"required,gt=0,lte=115"`
	HairColor *HairColor `json:"hair_color" mapstructure:"hair_color" validate:"omitempty,oneof=white black brown blonde"`
	IsMarried *bool      `json:"is_married" mapstructure:"is_married"`
	Email     *string    `json:"email" mapstructure:"email" validate:"required,email,email_domain"`
	Password  *string    `json:"-" mapstructure:"password" validate:"required,min=8"`
}

func (p *Person) Schema() string { return SchemaPerson }

func (p *Person) Fields() map[string]any {
	return map[string]any{
		"first_name": value(p.FirstName),
		"last_name":  value(p.LastName),
		"age":        value(p.Age),
		"hair_color": value(p.HairColor),
		"is_married": value(p.IsMarried),
		"email":      value(p.Email),
	}
}

// PersonQuery holds the query parameters of GET /person/detail.
type PersonQuery struct {
	Name *string `json:"name" mapstructure:"name" validate:"omitempty,min=1,max=50"`
	Age  *int    `json:"age" mapstructure:"age" validate:"required"`
}

func (q *PersonQuery) Schema() string { return SchemaPersonQuery }

func (q *PersonQuery) Fields() map[string]any {
	return map[string]any{
		"name": value(q.Name),
		"age":  value(q.Age),
	}
}

// Key is the response key of GET /person/detail: the name itself, or
// "null" when no name was given.
func (q *PersonQuery) Key() string {
	if q.Name == nil {
		return "null"
	}
	return *q.Name
}

// PersonPath holds the person identifier taken from the URL path.
type PersonPath struct {
	ID *int `json:"id" mapstructure:"id" validate:"required,gt=0"`
}

func (p *PersonPath) Schema() string { return SchemaPersonPath }

func (p *PersonPath) Fields() map[string]any {
	return map[string]any{"id": value(p.ID)}
}

// Key renders the identifier as a response key.
func (p *PersonPath) Key() string {
	if p.ID == nil {
		return ""
	}
	return strconv.Itoa(*p.ID)
}
