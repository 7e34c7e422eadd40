package services

import (
	"context"
	"strings"
	"time"

	"marketplace/internal/auth"
	"marketplace/internal/domain"
	"marketplace/internal/domain/models"
	"marketplace/internal/query"
	"marketplace/internal/repositories"
)

type RegisterInput struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=2"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type UserPatch struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Password  *string `json:"password" binding:"omitempty,min=2"`
}

type UserService struct {
	Users  repositories.UserRepository
	Hasher auth.PasswordHasher
}

// Register creates a USER account. Duplicate e-mails surface as ConflictError.
func (s UserService) Register(ctx context.Context, in RegisterInput) (models.User, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || !strings.Contains(email, "@") {
		return models.User{}, domain.ValidationError{Field: "email", Msg: "must be a valid address"}
	}
	if in.Password == "" {
		return models.User{}, domain.ValidationError{Field: "password", Msg: "is required"}
	}

	hash, err := s.Hasher.HashPassword(ctx, in.Password)
	if err != nil {
		return models.User{}, domain.InternalError{Msg: "hash password", Err: err}
	}

	u := models.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Roles:        []string{string(domain.RoleUser)},
		CreatedAt:    time.Now().UTC(),
	}
	id, err := s.Users.Create(ctx, u)
	if err != nil {
		return models.User{}, err
	}
	u.ID = id
	return u, nil
}

func (s UserService) Get(ctx context.Context, id int64) (models.User, error) {
	return s.Users.GetByID(ctx, id)
}

func (s UserService) List(ctx context.Context, c domain.UserCriteria, page query.PageRequest) (query.Page[models.User], error) {
	spec, err := query.Users(c, page)
	if err != nil {
		return query.Page[models.User]{}, err
	}
	return s.Users.List(ctx, spec)
}

// Update applies patch to an already loaded user.
func (s UserService) Update(ctx context.Context, u models.User, patch UserPatch) (models.User, error) {
	if patch.FirstName != nil {
		u.FirstName = strings.TrimSpace(*patch.FirstName)
	}
	if patch.LastName != nil {
		u.LastName = strings.TrimSpace(*patch.LastName)
	}
	if patch.Password != nil {
		hash, err := s.Hasher.HashPassword(ctx, *patch.Password)
		if err != nil {
			return models.User{}, domain.InternalError{Msg: "hash password", Err: err}
		}
		u.PasswordHash = hash
	}
	if err := s.Users.Update(ctx, u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

func (s UserService) Delete(ctx context.Context, id int64) error {
	return s.Users.Delete(ctx, id)
}
