package query

import "marketplace/internal/domain"

// Spec is one compiled list query: filter, ordering and page.
type Spec struct {
	Where Predicate
	Sort  Sort
	Page  PageRequest
}

var productFilters = []Factory[domain.ProductCriteria]{
	Contains("name", func(c domain.ProductCriteria) *string { return c.Name }),
	Contains("description", func(c domain.ProductCriteria) *string { return c.Description }),
	Range("price",
		func(c domain.ProductCriteria) *float64 { return c.MinPrice },
		func(c domain.ProductCriteria) *float64 { return c.MaxPrice }),
	Equal("seller_id", func(c domain.ProductCriteria) *int64 { return c.SellerID }),
	Equal("category_id", func(c domain.ProductCriteria) *int64 { return c.CategoryID }),
}

var productSort = SortFields{"id": "id", "name": "name", "price": "price", "createdAt": "created_at"}

func Products(c domain.ProductCriteria, page PageRequest) (Spec, error) {
	return compile(c, page, productSort, c.SortBy, c.SortDirection, productFilters)
}

var orderFilters = []Factory[domain.OrderCriteria]{
	Equal("user_id", func(c domain.OrderCriteria) *int64 { return c.UserID }),
	Equal("status_id", func(c domain.OrderCriteria) *int64 { return c.StatusID }),
	Range("total_price",
		func(c domain.OrderCriteria) *float64 { return c.MinTotal },
		func(c domain.OrderCriteria) *float64 { return c.MaxTotal }),
}

var orderSort = SortFields{"id": "id", "totalPrice": "total_price", "createdAt": "created_at"}

func Orders(c domain.OrderCriteria, page PageRequest) (Spec, error) {
	return compile(c, page, orderSort, c.SortBy, c.SortDirection, orderFilters)
}

var orderItemFilters = []Factory[domain.OrderItemCriteria]{
	Equal("order_id", func(c domain.OrderItemCriteria) *int64 { return c.OrderID }),
	Equal("product_id", func(c domain.OrderItemCriteria) *int64 { return c.ProductID }),
	Range("quantity",
		func(c domain.OrderItemCriteria) *int { return c.MinQuantity },
		func(c domain.OrderItemCriteria) *int { return c.MaxQuantity }),
}

var orderItemSort = SortFields{"id": "id", "quantity": "quantity", "price": "price"}

func OrderItems(c domain.OrderItemCriteria, page PageRequest) (Spec, error) {
	return compile(c, page, orderItemSort, c.SortBy, c.SortDirection, orderItemFilters)
}

var userFilters = []Factory[domain.UserCriteria]{
	Contains("email", func(c domain.UserCriteria) *string { return c.Email }),
	Contains("first_name", func(c domain.UserCriteria) *string { return c.FirstName }),
	Contains("last_name", func(c domain.UserCriteria) *string { return c.LastName }),
	Member("roles", func(c domain.UserCriteria) *string { return c.Role }),
}

var userSort = SortFields{"id": "id", "email": "email", "lastName": "last_name", "createdAt": "created_at"}

func Users(c domain.UserCriteria, page PageRequest) (Spec, error) {
	return compile(c, page, userSort, c.SortBy, c.SortDirection, userFilters)
}

var categoryFilters = []Factory[domain.CategoryCriteria]{
	Contains("name", func(c domain.CategoryCriteria) *string { return c.Name }),
}

var catalogSort = SortFields{"id": "id", "name": "name"}

func Categories(c domain.CategoryCriteria, page PageRequest) (Spec, error) {
	return compile(c, page, catalogSort, c.SortBy, c.SortDirection, categoryFilters)
}

var statusFilters = []Factory[domain.StatusCriteria]{
	Contains("name", func(c domain.StatusCriteria) *string { return c.Name }),
}

func Statuses(c domain.StatusCriteria, page PageRequest) (Spec, error) {
	return compile(c, page, catalogSort, c.SortBy, c.SortDirection, statusFilters)
}

func compile[C any](c C, page PageRequest, fields SortFields, sortBy, direction *string, filters []Factory[C]) (Spec, error) {
	s, err := fields.Resolve(sortBy, direction)
	if err != nil {
		return Spec{}, err
	}
	return Spec{
		Where: Build(c, filters...),
		Sort:  s,
		Page:  Normalize(page.Number, page.Size),
	}, nil
}
