package model

// Location is where a person lives.
type Location struct {
	City    *string `json:"city" mapstructure:"city" validate:"required,min=1,max=50"`
	State   *string `json:"state" mapstructure:"state" validate:"required,min=1,max=50"`
	Country *string `json:"country" mapstructure:"country" validate:"required,min=1,max=50"`
}

func (l *Location) Schema() string { return SchemaLocation }

func (l *Location) Fields() map[string]any {
	return map[string]any{
		"city":    value(l.City),
		"state":   value(l.State),
		"country": value(l.Country),
	}
}
