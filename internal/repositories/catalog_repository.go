package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"marketplace/internal/domain"
	"marketplace/internal/domain/models"
	"marketplace/internal/query"
)

type CategoryRepository struct {
	DB *sql.DB
}

func scanCategory(s rowScanner) (models.Category, error) {
	var c models.Category
	err := s.Scan(&c.ID, &c.Name, &c.Description)
	return c, err
}

func (r CategoryRepository) GetByID(ctx context.Context, id int64) (models.Category, error) {
	row := resolveDB(r.DB).QueryRowContext(ctx, "SELECT id, name, description FROM categories WHERE id = ? LIMIT 1", id)
	return getOne(row, "category", scanCategory)
}

func (r CategoryRepository) List(ctx context.Context, spec query.Spec) (query.Page[models.Category], error) {
	return listPage(ctx, resolveDB(r.DB), "categories", "id, name, description", spec, scanCategory)
}

func (r CategoryRepository) Create(ctx context.Context, c models.Category) (int64, error) {
	res, err := resolveDB(r.DB).ExecContext(ctx, "INSERT INTO categories (name, description) VALUES (?, ?)", c.Name, c.Description)
	if err != nil {
		if isDuplicate(err) {
			return 0, domain.ConflictError{Resource: "category", Msg: "name already exists", Err: err}
		}
		return 0, fmt.Errorf("insert category: %w", err)
	}
	return res.LastInsertId()
}

func (r CategoryRepository) Update(ctx context.Context, c models.Category) error {
	res, err := resolveDB(r.DB).ExecContext(ctx, "UPDATE categories SET name = ?, description = ? WHERE id = ?", c.Name, c.Description, c.ID)
	if err != nil {
		if isDuplicate(err) {
			return domain.ConflictError{Resource: "category", Msg: "name already exists", Err: err}
		}
		return fmt.Errorf("update category: %w", err)
	}
	return expectAffected(res, "category")
}

func (r CategoryRepository) Delete(ctx context.Context, id int64) error {
	res, err := resolveDB(r.DB).ExecContext(ctx, "DELETE FROM categories WHERE id = ?", id)
	if err != nil {
		if isReferenced(err) {
			return domain.ConflictError{Resource: "category", Msg: "still used by products", Err: err}
		}
		return fmt.Errorf("delete category: %w", err)
	}
	return expectAffected(res, "category")
}

type StatusRepository struct {
	DB *sql.DB
}

func scanStatus(s rowScanner) (models.Status, error) {
	var st models.Status
	err := s.Scan(&st.ID, &st.Name)
	return st, err
}

func (r StatusRepository) GetByID(ctx context.Context, id int64) (models.Status, error) {
	row := resolveDB(r.DB).QueryRowContext(ctx, "SELECT id, name FROM statuses WHERE id = ? LIMIT 1", id)
	return getOne(row, "status", scanStatus)
}

func (r StatusRepository) List(ctx context.Context, spec query.Spec) (query.Page[models.Status], error) {
	return listPage(ctx, resolveDB(r.DB), "statuses", "id, name", spec, scanStatus)
}

func (r StatusRepository) Create(ctx context.Context, st models.Status) (int64, error) {
	res, err := resolveDB(r.DB).ExecContext(ctx, "INSERT INTO statuses (name) VALUES (?)", st.Name)
	if err != nil {
		if isDuplicate(err) {
			return 0, domain.ConflictError{Resource: "status", Msg: "name already exists", Err: err}
		}
		return 0, fmt.Errorf("insert status: %w", err)
	}
	return res.LastInsertId()
}

func (r StatusRepository) Update(ctx context.Context, st models.Status) error {
	res, err := resolveDB(r.DB).ExecContext(ctx, "UPDATE statuses SET name = ? WHERE id = ?", st.Name, st.ID)
	if err != nil {
		if isDuplicate(err) {
			return domain.ConflictError{Resource: "status", Msg: "name already exists", Err: err}
		}
		return fmt.Errorf("update status: %w", err)
	}
	return expectAffected(res, "status")
}

func (r StatusRepository) Delete(ctx context.Context, id int64) error {
	res, err := resolveDB(r.DB).ExecContext(ctx, "DELETE FROM statuses WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete status: %w", err)
	}
	return expectAffected(res, "status")
}
