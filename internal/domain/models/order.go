package models

import "time"

type Order struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"userId"`
	StatusID        *int64    `json:"statusId"`
	ShippingAddress string    `json:"shippingAddress"`
	TotalPrice      float64   `json:"totalPrice"`
	CreatedAt       time.Time `json:"createdAt"`
}

type OrderItem struct {
	ID        int64   `json:"id"`
	OrderID   int64   `json:"orderId"`
	ProductID int64   `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Subtotal is the line amount at the price captured when the item was added.
func (i OrderItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}
