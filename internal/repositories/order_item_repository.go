package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"marketplace/internal/domain/models"
	"marketplace/internal/query"
)

const orderItemColumns = "id, order_id, product_id, quantity, price"

type OrderItemRepository struct {
	DB *sql.DB
}

func scanOrderItem(s rowScanner) (models.OrderItem, error) {
	var i models.OrderItem
	err := s.Scan(&i.ID, &i.OrderID, &i.ProductID, &i.Quantity, &i.Price)
	return i, err
}

func (r OrderItemRepository) GetByID(ctx context.Context, id int64) (models.OrderItem, error) {
	row := resolveDB(r.DB).QueryRowContext(ctx, "SELECT "+orderItemColumns+" FROM order_items WHERE id = ? LIMIT 1", id)
	return getOne(row, "order item", scanOrderItem)
}

func (r OrderItemRepository) List(ctx context.Context, spec query.Spec) (query.Page[models.OrderItem], error) {
	return listPage(ctx, resolveDB(r.DB), "order_items", orderItemColumns, spec, scanOrderItem)
}

// ListByOrder returns every item of one order, oldest first.
func (r OrderItemRepository) ListByOrder(ctx context.Context, orderID int64) ([]models.OrderItem, error) {
	rows, err := resolveDB(r.DB).QueryContext(ctx, "SELECT "+orderItemColumns+" FROM order_items WHERE order_id = ? ORDER BY id ASC", orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	items := []models.OrderItem{}
	for rows.Next() {
		item, err := scanOrderItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Create inserts the item and adds its subtotal to the order total in one
// transaction.
func (r OrderItemRepository) Create(ctx context.Context, item models.OrderItem) (int64, error) {
	tx, err := resolveDB(r.DB).BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO order_items (order_id, product_id, quantity, price)
		VALUES (?, ?, ?, ?)
	`, item.OrderID, item.ProductID, item.Quantity, item.Price)
	if err != nil {
		return 0, fmt.Errorf("insert order item: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("order item id: %w", err)
	}

	res, err = tx.ExecContext(ctx, "UPDATE orders SET total_price = total_price + ? WHERE id = ?", item.Subtotal(), item.OrderID)
	if err != nil {
		return 0, fmt.Errorf("update order total: %w", err)
	}
	if err := expectAffected(res, "order"); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return id, nil
}

// Delete removes the item and subtracts its subtotal from the order total.
func (r OrderItemRepository) Delete(ctx context.Context, item models.OrderItem) error {
	tx, err := resolveDB(r.DB).BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, "DELETE FROM order_items WHERE id = ?", item.ID)
	if err != nil {
		return fmt.Errorf("delete order item: %w", err)
	}
	if err := expectAffected(res, "order item"); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "UPDATE orders SET total_price = total_price - ? WHERE id = ?", item.Subtotal(), item.OrderID); err != nil {
		return fmt.Errorf("update order total: %w", err)
	}
	return tx.Commit()
}
