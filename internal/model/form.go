package model

// LoginForm is the URL-encoded form of POST /login.
type LoginForm struct {
	Username *string `json:"username" mapstructure:"username" validate:"required,min=1,max=20"`
	Password *string `json:"-" mapstructure:"password" validate:"required,min=1"`
}

func (f *LoginForm) Schema() string { return SchemaLogin }

func (f *LoginForm) Fields() map[string]any {
	return map[string]any{"username": value(f.Username)}
}

// LoginOut is the login response. It never carries the password.
type LoginOut struct {
	Username string `json:"username"`
}

// ContactForm is the URL-encoded form of POST /contact.
type ContactForm struct {
	FirstName *string `json:"first_name" mapstructure:"first_name" validate:"required,min=1,max=20"`
	LastName  *string `json:"last_name" mapstructure:"last_name" validate:"required,min=1,max=20"`
	Email     *string `json:"email" mapstructure:"email" validate:"required,email,email_domain"`
	Message   *string `json:"message" mapstructure:"message" validate:"required,min=20"`
}

func (f *ContactForm) Schema() string { return SchemaContact }

func (f *ContactForm) Fields() map[string]any {
	return map[string]any{
		"first_name": value(f.FirstName),
		"last_name":  value(f.LastName),
		"email":      value(f.Email),
		"message":    value(f.Message),
	}
}

// ImageInfo describes an uploaded image.
type ImageInfo struct {
	Filename string  `json:"filename"`
	Format   string  `json:"format"`
	SizeKB   float64 `json:"size(kb)"`
}
