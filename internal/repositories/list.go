package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	intconfig "marketplace/internal/config"
	"marketplace/internal/domain"
	"marketplace/internal/query"

	"github.com/go-sql-driver/mysql"
)

const (
	mysqlDuplicateEntry  = 1062
	mysqlRowIsReferenced = 1451
)

type rowScanner interface {
	Scan(dest ...any) error
}

func resolveDB(db *sql.DB) *sql.DB {
	if db != nil {
		return db
	}
	return intconfig.DB
}

// listPage runs the count and page queries for one compiled spec.
func listPage[T any](ctx context.Context, db *sql.DB, table, columns string, spec query.Spec, scan func(rowScanner) (T, error)) (query.Page[T], error) {
	where, args := spec.Where.SQL()
	clause := ""
	if where != "" {
		clause = " WHERE " + where
	}

	var total int64
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table+clause, args...).Scan(&total); err != nil {
		return query.Page[T]{}, fmt.Errorf("count %s: %w", table, err)
	}

	pageArgs := make([]any, 0, len(args)+2)
	pageArgs = append(pageArgs, args...)
	pageArgs = append(pageArgs, spec.Page.Size, spec.Page.Offset())

	rows, err := db.QueryContext(ctx,
		fmt.Sprintf("SELECT %s FROM %s%s ORDER BY %s LIMIT ? OFFSET ?", columns, table, clause, spec.Sort.SQL()),
		pageArgs...)
	if err != nil {
		return query.Page[T]{}, fmt.Errorf("list %s: %w", table, err)
	}
	defer rows.Close()

	list := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return query.Page[T]{}, fmt.Errorf("scan %s: %w", table, err)
		}
		list = append(list, v)
	}
	if err := rows.Err(); err != nil {
		return query.Page[T]{}, fmt.Errorf("iterate %s: %w", table, err)
	}
	return query.NewPage(list, spec.Page, total), nil
}

// getOne scans a single row and maps sql.ErrNoRows to NotFoundError.
func getOne[T any](row *sql.Row, resource string, scan func(rowScanner) (T, error)) (T, error) {
	v, err := scan(row)
	if err != nil {
		var zero T
		if errors.Is(err, sql.ErrNoRows) {
			return zero, domain.NotFoundError{Resource: resource, Err: err}
		}
		return zero, fmt.Errorf("get %s: %w", resource, err)
	}
	return v, nil
}

// expectAffected turns a zero-row update or delete into NotFoundError.
func expectAffected(res sql.Result, resource string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s rows affected: %w", resource, err)
	}
	if n == 0 {
		return domain.NotFoundError{Resource: resource}
	}
	return nil
}

func isDuplicate(err error) bool {
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry
}

func isReferenced(err error) bool {
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == mysqlRowIsReferenced
}
