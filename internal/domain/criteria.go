package domain

// Criteria types carry optional list filters bound from query parameters.
// A nil field means no constraint on that attribute.

type ProductCriteria struct {
	Name          *string  `form:"name"`
	Description   *string  `form:"description"`
	MinPrice      *float64 `form:"minPrice"`
	MaxPrice      *float64 `form:"maxPrice"`
	SellerID      *int64   `form:"sellerId"`
	CategoryID    *int64   `form:"categoryId"`
	SortBy        *string  `form:"sortBy"`
	SortDirection *string  `form:"sortDirection"`
}

type OrderCriteria struct {
	UserID        *int64   `form:"userId"`
	StatusID      *int64   `form:"statusId"`
	MinTotal      *float64 `form:"minTotal"`
	MaxTotal      *float64 `form:"maxTotal"`
	SortBy        *string  `form:"sortBy"`
	SortDirection *string  `form:"sortDirection"`
}

type OrderItemCriteria struct {
	OrderID       *int64  `form:"orderId"`
	ProductID     *int64  `form:"productId"`
	MinQuantity   *int    `form:"minQuantity"`
	MaxQuantity   *int    `form:"maxQuantity"`
	SortBy        *string `form:"sortBy"`
	SortDirection *string `form:"sortDirection"`
}

type UserCriteria struct {
	Email         *string `form:"email"`
	FirstName     *string `form:"firstName"`
	LastName      *string `form:"lastName"`
	Role          *string `form:"role"`
	SortBy        *string `form:"sortBy"`
	SortDirection *string `form:"sortDirection"`
}

type CategoryCriteria struct {
	Name          *string `form:"name"`
	SortBy        *string `form:"sortBy"`
	SortDirection *string `form:"sortDirection"`
}

type StatusCriteria struct {
	Name          *string `form:"name"`
	SortBy        *string `form:"sortBy"`
	SortDirection *string `form:"sortDirection"`
}
