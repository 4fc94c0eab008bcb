package service

import (
	"context"

	"github.com/deppfellow/people-api/internal/model"
	"github.com/deppfellow/people-api/internal/server"
)

// AuthService accepts any well-formed login. There is no credential store;
// the password is checked for presence only and never leaves this method.
type AuthService struct {
	server *server.Server
}

func NewAuthService(s *server.Server) *AuthService {
	return &AuthService{
		server: s,
	}
}

func (as *AuthService) Login(ctx context.Context, form *model.LoginForm) *model.LoginOut {
	loggerFor(ctx, as.server).Info().
		Str("username", *form.Username).
		Msg("login accepted")

	return &model.LoginOut{Username: *form.Username}
}

// Contact returns the caller's User-Agent, or nil when none was sent.
func (as *AuthService) Contact(ctx context.Context, form *model.ContactForm, userAgent, ads *string) *string {
	event := loggerFor(ctx, as.server).Info().Str("email", *form.Email)
	if ads != nil {
		event = event.Str("ads", *ads)
	}
	event.Msg("contact form received")

	return userAgent
}
