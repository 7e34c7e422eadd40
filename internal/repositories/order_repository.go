package repositories

import (
	"context"
	"database/sql"
	"fmt"

	intdb "marketplace/internal/db"
	"marketplace/internal/domain/models"
	"marketplace/internal/query"
)

const orderColumns = "id, user_id, status_id, shipping_address, total_price, created_at"

type OrderRepository struct {
	DB *sql.DB
}

func scanOrder(s rowScanner) (models.Order, error) {
	var (
		o        models.Order
		statusID sql.NullInt64
	)
	if err := s.Scan(&o.ID, &o.UserID, &statusID, &o.ShippingAddress, &o.TotalPrice, &o.CreatedAt); err != nil {
		return models.Order{}, err
	}
	if statusID.Valid {
		id := statusID.Int64
		o.StatusID = &id
	}
	return o, nil
}

func (r OrderRepository) GetByID(ctx context.Context, id int64) (models.Order, error) {
	row := resolveDB(r.DB).QueryRowContext(ctx, "SELECT "+orderColumns+" FROM orders WHERE id = ? LIMIT 1", id)
	return getOne(row, "order", scanOrder)
}

func (r OrderRepository) List(ctx context.Context, spec query.Spec) (query.Page[models.Order], error) {
	return listPage(ctx, resolveDB(r.DB), "orders", orderColumns, spec, scanOrder)
}

func (r OrderRepository) Create(ctx context.Context, o models.Order) (int64, error) {
	res, err := resolveDB(r.DB).ExecContext(ctx, `
		INSERT INTO orders (user_id, status_id, shipping_address, total_price, created_at)
		VALUES (?, ?, ?, 0, ?)
	`, o.UserID, intdb.NullIfZero(o.StatusID), o.ShippingAddress, o.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}
	return res.LastInsertId()
}

func (r OrderRepository) UpdateShippingAddress(ctx context.Context, id int64, address string) error {
	res, err := resolveDB(r.DB).ExecContext(ctx, "UPDATE orders SET shipping_address = ? WHERE id = ?", address, id)
	if err != nil {
		return fmt.Errorf("update order address: %w", err)
	}
	return expectAffected(res, "order")
}

func (r OrderRepository) UpdateStatus(ctx context.Context, id, statusID int64) error {
	res, err := resolveDB(r.DB).ExecContext(ctx, "UPDATE orders SET status_id = ? WHERE id = ?", statusID, id)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return expectAffected(res, "order")
}

func (r OrderRepository) Delete(ctx context.Context, id int64) error {
	res, err := resolveDB(r.DB).ExecContext(ctx, "DELETE FROM orders WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return expectAffected(res, "order")
}
