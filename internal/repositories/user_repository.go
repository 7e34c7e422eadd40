package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"marketplace/internal/domain"
	"marketplace/internal/domain/models"
	"marketplace/internal/query"
)

const userColumns = "id, email, password_hash, first_name, last_name, roles, created_at"

type UserRepository struct {
	DB *sql.DB
}

func scanUser(s rowScanner) (models.User, error) {
	var (
		u     models.User
		roles string
	)
	if err := s.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &roles, &u.CreatedAt); err != nil {
		return models.User{}, err
	}
	u.Roles = domain.ParseRoles(roles)
	return u, nil
}

func (r UserRepository) GetByID(ctx context.Context, id int64) (models.User, error) {
	row := resolveDB(r.DB).QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE id = ? LIMIT 1", id)
	return getOne(row, "user", scanUser)
}

func (r UserRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	row := resolveDB(r.DB).QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE email = ? LIMIT 1", email)
	return getOne(row, "user", scanUser)
}

func (r UserRepository) List(ctx context.Context, spec query.Spec) (query.Page[models.User], error) {
	return listPage(ctx, resolveDB(r.DB), "users", userColumns, spec, scanUser)
}

func (r UserRepository) Create(ctx context.Context, u models.User) (int64, error) {
	res, err := resolveDB(r.DB).ExecContext(ctx, `
		INSERT INTO users (email, password_hash, first_name, last_name, roles, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, u.Email, u.PasswordHash, u.FirstName, u.LastName, domain.JoinRoles(u.Roles), u.CreatedAt)
	if err != nil {
		if isDuplicate(err) {
			return 0, domain.ConflictError{Resource: "user", Msg: "email already registered", Err: err}
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return res.LastInsertId()
}

func (r UserRepository) Update(ctx context.Context, u models.User) error {
	res, err := resolveDB(r.DB).ExecContext(ctx, `
		UPDATE users SET first_name = ?, last_name = ?, password_hash = ? WHERE id = ?
	`, u.FirstName, u.LastName, u.PasswordHash, u.ID)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return expectAffected(res, "user")
}

func (r UserRepository) Delete(ctx context.Context, id int64) error {
	res, err := resolveDB(r.DB).ExecContext(ctx, "DELETE FROM users WHERE id = ?", id)
	if err != nil {
		if isReferenced(err) {
			return domain.ConflictError{Resource: "user", Msg: "still selling products", Err: err}
		}
		return fmt.Errorf("delete user: %w", err)
	}
	return expectAffected(res, "user")
}
