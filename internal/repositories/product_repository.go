package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"marketplace/internal/domain"
	"marketplace/internal/domain/models"
	"marketplace/internal/query"
)

const productColumns = "id, name, COALESCE(description,''), price, quantity, seller_id, category_id, created_at"

type ProductRepository struct {
	DB *sql.DB
}

func scanProduct(s rowScanner) (models.Product, error) {
	var p models.Product
	err := s.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Quantity, &p.SellerID, &p.CategoryID, &p.CreatedAt)
	return p, err
}

func (r ProductRepository) GetByID(ctx context.Context, id int64) (models.Product, error) {
	row := resolveDB(r.DB).QueryRowContext(ctx, "SELECT "+productColumns+" FROM products WHERE id = ? LIMIT 1", id)
	return getOne(row, "product", scanProduct)
}

func (r ProductRepository) List(ctx context.Context, spec query.Spec) (query.Page[models.Product], error) {
	return listPage(ctx, resolveDB(r.DB), "products", productColumns, spec, scanProduct)
}

func (r ProductRepository) Create(ctx context.Context, p models.Product) (int64, error) {
	res, err := resolveDB(r.DB).ExecContext(ctx, `
		INSERT INTO products (name, description, price, quantity, seller_id, category_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, p.Name, p.Description, p.Price, p.Quantity, p.SellerID, p.CategoryID, p.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("insert product: %w", err)
	}
	return res.LastInsertId()
}

func (r ProductRepository) Update(ctx context.Context, p models.Product) error {
	res, err := resolveDB(r.DB).ExecContext(ctx, `
		UPDATE products SET name = ?, description = ?, price = ?, quantity = ?, category_id = ? WHERE id = ?
	`, p.Name, p.Description, p.Price, p.Quantity, p.CategoryID, p.ID)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return expectAffected(res, "product")
}

func (r ProductRepository) Delete(ctx context.Context, id int64) error {
	res, err := resolveDB(r.DB).ExecContext(ctx, "DELETE FROM products WHERE id = ?", id)
	if err != nil {
		if isReferenced(err) {
			return domain.ConflictError{Resource: "product", Msg: "still referenced by order items", Err: err}
		}
		return fmt.Errorf("delete product: %w", err)
	}
	return expectAffected(res, "product")
}
