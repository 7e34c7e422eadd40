package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"marketplace/internal/domain"
	"marketplace/internal/domain/models"
	"marketplace/internal/query"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

var (
	productCols = []string{"id", "name", "description", "price", "quantity", "seller_id", "category_id", "created_at"}
	userCols    = []string{"id", "email", "password_hash", "first_name", "last_name", "roles", "created_at"}
)

func TestProductListBuildsFilteredPage(t *testing.T) {
	db, mock := newMock(t)
	name := "Lamp"
	min := 10.0
	spec, err := query.Products(domain.ProductCriteria{Name: &name, MinPrice: &min}, query.PageRequest{Number: 2, Size: 5})
	if err != nil {
		t.Fatalf("spec: %v", err)
	}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM products WHERE name COLLATE utf8mb4_bin LIKE ? AND price >= ?")).
		WithArgs("%Lamp%", 10.0).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery(regexp.QuoteMeta("FROM products WHERE name COLLATE utf8mb4_bin LIKE ? AND price >= ? ORDER BY id DESC LIMIT ? OFFSET ?")).
		WithArgs("%Lamp%", 10.0, 5, 10).
		WillReturnRows(sqlmock.NewRows(productCols).
			AddRow(11, "Lamp", "desk", 12.5, 3, 1, 2, time.Now()).
			AddRow(12, "Lamp XL", "floor", 30.0, 1, 2, 2, time.Now()))

	page, err := ProductRepository{DB: db}.List(context.Background(), spec)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(page.Content) != 2 || page.TotalElements != 12 || page.TotalPages != 3 || page.PageNumber != 2 {
		t.Fatalf("unexpected page %+v", page)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInvalidPagingMatchesFirstSingleRowPage(t *testing.T) {
	for _, raw := range []query.PageRequest{{Number: -1, Size: 0}, {Number: 0, Size: 1}} {
		db, mock := newMock(t)
		spec, _ := query.Categories(domain.CategoryCriteria{}, raw)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM categories")).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, description FROM categories ORDER BY id DESC LIMIT ? OFFSET ?")).
			WithArgs(1, 0).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description"}).AddRow(3, "Garden", ""))

		page, err := CategoryRepository{DB: db}.List(context.Background(), spec)
		if err != nil {
			t.Fatalf("List(%+v): %v", raw, err)
		}
		if page.PageNumber != 0 || page.PageSize != 1 || len(page.Content) != 1 || page.Content[0].ID != 3 {
			t.Fatalf("List(%+v) = %+v", raw, page)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet expectations: %v", err)
		}
	}
}

func TestGetByIDNotFound(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery("FROM products WHERE id = \\?").WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(productCols))

	_, err := ProductRepository{DB: db}.GetByID(context.Background(), 404)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestUserCreateDuplicateEmailIsConflict(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'u@example.com' for key 'email'"})

	_, err := UserRepository{DB: db}.Create(context.Background(), models.User{Email: "u@example.com", Roles: []string{"USER"}})
	if !domain.IsConflict(err) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
}

func TestUserScanSplitsRoles(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery("FROM users WHERE email = \\?").WithArgs("a@example.com").
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow(1, "a@example.com", "hash", "Ada", "L", "USER,ADMIN", time.Now()))

	u, err := UserRepository{DB: db}.GetByEmail(context.Background(), "a@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if !u.HasRole(domain.RoleAdmin) || len(u.Roles) != 2 {
		t.Fatalf("unexpected roles %v", u.Roles)
	}
}

func TestDeleteMissingRowIsNotFound(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec("DELETE FROM statuses").WithArgs(int64(9)).WillReturnResult(sqlmock.NewResult(0, 0))

	if err := (StatusRepository{DB: db}).Delete(context.Background(), 9); !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestOrderItemCreateUpdatesTotalInTransaction(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO order_items").WithArgs(int64(5), int64(8), 3, 2.5).
		WillReturnResult(sqlmock.NewResult(21, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE orders SET total_price = total_price + ? WHERE id = ?")).WithArgs(7.5, int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	id, err := OrderItemRepository{DB: db}.Create(context.Background(), models.OrderItem{OrderID: 5, ProductID: 8, Quantity: 3, Price: 2.5})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id != 21 {
		t.Fatalf("id = %d, want 21", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrderItemCreateRollsBackWhenOrderMissing(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO order_items").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE orders SET total_price").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := OrderItemRepository{DB: db}.Create(context.Background(), models.OrderItem{OrderID: 5, ProductID: 8, Quantity: 1, Price: 1})
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrderScanNullableStatus(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery("FROM orders WHERE id = \\?").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "status_id", "shipping_address", "total_price", "created_at"}).
			AddRow(1, 2, nil, "Main St 1", 10.0, time.Now()))

	o, err := OrderRepository{DB: db}.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if o.StatusID != nil || o.UserID != 2 {
		t.Fatalf("unexpected order %+v", o)
	}
}

func TestReferencedRowDeleteIsConflict(t *testing.T) {
	referenced := &mysql.MySQLError{Number: 1451, Message: "Cannot delete or update a parent row"}
	cases := []struct {
		table string
		del   func(db *sql.DB) error
	}{
		{"products", func(db *sql.DB) error { return ProductRepository{DB: db}.Delete(context.Background(), 5) }},
		{"users", func(db *sql.DB) error { return UserRepository{DB: db}.Delete(context.Background(), 5) }},
		{"categories", func(db *sql.DB) error { return CategoryRepository{DB: db}.Delete(context.Background(), 5) }},
	}
	for _, tc := range cases {
		db, mock := newMock(t)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM "+tc.table+" WHERE id = ?")).
			WithArgs(int64(5)).
			WillReturnError(referenced)

		if err := tc.del(db); !domain.IsConflict(err) {
			t.Fatalf("%s: expected ConflictError, got %v", tc.table, err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("%s: unmet expectations: %v", tc.table, err)
		}
	}
}

func TestProductListConjunctionAndEmptyCriteria(t *testing.T) {
	db, mock := newMock(t)
	name, min, seller := "Red", 100.0, int64(2)
	all, err := query.Products(domain.ProductCriteria{Name: &name, MinPrice: &min, SellerID: &seller}, query.PageRequest{Size: 10})
	if err != nil {
		t.Fatalf("spec: %v", err)
	}
	none, err := query.Products(domain.ProductCriteria{}, query.PageRequest{Size: 10})
	if err != nil {
		t.Fatalf("spec: %v", err)
	}

	where := "name COLLATE utf8mb4_bin LIKE ? AND price >= ? AND seller_id = ?"
	mock.ExpectQuery("^" + regexp.QuoteMeta("SELECT COUNT(*) FROM products WHERE "+where) + "$").
		WithArgs("%Red%", 100.0, int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))
	mock.ExpectQuery("^"+regexp.QuoteMeta("SELECT "+productColumns+" FROM products WHERE "+where+" ORDER BY id DESC LIMIT ? OFFSET ?")+"$").
		WithArgs("%Red%", 100.0, int64(2), 10, 0).
		WillReturnRows(sqlmock.NewRows(productCols).AddRow(4, "Red Lamp XL", "", 140.0, 1, 2, 10, time.Now()))
	mock.ExpectQuery("^" + regexp.QuoteMeta("SELECT COUNT(*) FROM products") + "$").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(4)))
	mock.ExpectQuery("^"+regexp.QuoteMeta("SELECT "+productColumns+" FROM products ORDER BY id DESC LIMIT ? OFFSET ?")+"$").
		WithArgs(10, 0).
		WillReturnRows(sqlmock.NewRows(productCols))

	repo := ProductRepository{DB: db}
	page, err := repo.List(context.Background(), all)
	if err != nil {
		t.Fatalf("List filtered: %v", err)
	}
	if len(page.Content) != 1 || page.Content[0].ID != 4 {
		t.Fatalf("filtered content = %+v", page.Content)
	}
	if _, err := repo.List(context.Background(), none); err != nil {
		t.Fatalf("List unfiltered: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserRoleFilterUsesSetMembership(t *testing.T) {
	db, mock := newMock(t)
	role := "MIN"
	spec, err := query.Users(domain.UserCriteria{Role: &role}, query.PageRequest{Size: 10})
	if err != nil {
		t.Fatalf("spec: %v", err)
	}
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM users WHERE FIND_IN_SET(?, roles) > 0")).
		WithArgs("MIN").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))
	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE FIND_IN_SET(?, roles) > 0 ORDER BY id DESC")).
		WithArgs("MIN", 10, 0).
		WillReturnRows(sqlmock.NewRows(userCols))

	page, err := UserRepository{DB: db}.List(context.Background(), spec)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if page.TotalElements != 0 || len(page.Content) != 0 {
		t.Fatalf("unexpected page %+v", page)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
