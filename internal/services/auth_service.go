package services

import (
	"context"
	"strings"

	"marketplace/internal/auth"
	"marketplace/internal/domain"
	"marketplace/internal/repositories"
	"marketplace/internal/utils"
)

var errBadCredentials = domain.UnauthenticatedError{Msg: "invalid email or password"}

// AuthService exchanges credentials for a bearer token.
type AuthService struct {
	Users     repositories.UserRepository
	Hasher    auth.PasswordHasher
	Codec     *auth.Codec
	RequestID string
}

// Login returns a signed token. An unknown e-mail and a wrong password fail
// the same way.
func (s AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", domain.ValidationError{Msg: "email and password are required"}
	}

	user, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if domain.IsNotFound(err) {
			utils.LogEvent(s.RequestID, "auth", "login_rejected", "unknown email")
			return "", errBadCredentials
		}
		return "", err
	}

	ok, err := s.Hasher.VerifyPassword(ctx, password, user.PasswordHash)
	if err != nil {
		return "", domain.InternalError{Msg: "password check failed", Err: err}
	}
	if !ok {
		utils.LogEvent(s.RequestID, "auth", "login_rejected", "password mismatch")
		return "", errBadCredentials
	}

	token, err := s.Codec.Issue(user.Email, user.ID, user.Roles)
	if err != nil {
		return "", domain.InternalError{Msg: "token issue failed", Err: err}
	}
	return token, nil
}
