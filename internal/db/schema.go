package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"
)

type table struct {
	name string
	ddl  string
}

// Creation order follows foreign keys. Rows that order totals depend on are
// RESTRICT so they cannot vanish without going through the item transaction.
var tables = []table{
	{"users", `CREATE TABLE users (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		first_name VARCHAR(100) NOT NULL DEFAULT '',
		last_name VARCHAR(100) NOT NULL DEFAULT '',
		roles VARCHAR(255) NOT NULL DEFAULT 'USER',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	) DEFAULT CHARSET=utf8mb4`},
	{"categories", `CREATE TABLE categories (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(100) NOT NULL UNIQUE,
		description VARCHAR(500) NOT NULL DEFAULT ''
	) DEFAULT CHARSET=utf8mb4`},
	{"statuses", `CREATE TABLE statuses (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(100) NOT NULL UNIQUE
	) DEFAULT CHARSET=utf8mb4`},
	{"products", `CREATE TABLE products (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description TEXT,
		price DECIMAL(12,2) NOT NULL,
		quantity INT NOT NULL DEFAULT 0,
		seller_id BIGINT NOT NULL,
		category_id BIGINT NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (seller_id) REFERENCES users(id) ON DELETE RESTRICT,
		FOREIGN KEY (category_id) REFERENCES categories(id)
	) DEFAULT CHARSET=utf8mb4`},
	{"orders", `CREATE TABLE orders (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		user_id BIGINT NOT NULL,
		status_id BIGINT NULL,
		shipping_address VARCHAR(500) NOT NULL DEFAULT '',
		total_price DECIMAL(12,2) NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE,
		FOREIGN KEY (status_id) REFERENCES statuses(id) ON DELETE SET NULL
	) DEFAULT CHARSET=utf8mb4`},
	{"order_items", `CREATE TABLE order_items (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		order_id BIGINT NOT NULL,
		product_id BIGINT NOT NULL,
		quantity INT NOT NULL,
		price DECIMAL(12,2) NOT NULL,
		FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE,
		FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE RESTRICT
	) DEFAULT CHARSET=utf8mb4`},
}

// EnsureSchema creates any missing table. Existing tables are left untouched.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, t := range tables {
		if HasTable(ctx, db, t.name) {
			continue
		}
		if _, err := db.ExecContext(ctx, t.ddl); err != nil {
			return fmt.Errorf("create table %s: %w", t.name, err)
		}
		log.Printf("[DB] created table %s", t.name)
	}
	return nil
}
