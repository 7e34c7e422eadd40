package services

import (
	"context"
	"strings"
	"time"

	"marketplace/internal/domain"
	"marketplace/internal/domain/models"
	"marketplace/internal/query"
	"marketplace/internal/repositories"
	"marketplace/internal/utils"
)

type OrderInput struct {
	ShippingAddress string `json:"shippingAddress"`
	StatusID        *int64 `json:"statusId" binding:"omitempty,gt=0"`
}

type OrderPatch struct {
	ShippingAddress *string `json:"shippingAddress"`
}

type OrderStatusInput struct {
	StatusID int64 `json:"statusId" binding:"required,gt=0"`
}

type OrderItemInput struct {
	OrderID   int64 `json:"orderId" binding:"required,gt=0"`
	ProductID int64 `json:"productId" binding:"required,gt=0"`
	Quantity  int   `json:"quantity"`
}

type OrderService struct {
	Orders    repositories.OrderRepository
	Items     repositories.OrderItemRepository
	Products  repositories.ProductRepository
	Statuses  repositories.StatusRepository
	RequestID string
}

func (s OrderService) Create(ctx context.Context, userID int64, in OrderInput) (models.Order, error) {
	o := models.Order{
		UserID:          userID,
		StatusID:        in.StatusID,
		ShippingAddress: strings.TrimSpace(in.ShippingAddress),
		CreatedAt:       time.Now().UTC(),
	}
	if o.StatusID != nil {
		if _, err := s.Statuses.GetByID(ctx, *o.StatusID); err != nil {
			return models.Order{}, err
		}
	}
	id, err := s.Orders.Create(ctx, o)
	if err != nil {
		return models.Order{}, err
	}
	o.ID = id
	utils.LogEvent(s.RequestID, "order", "create", "order created")
	return o, nil
}

func (s OrderService) Get(ctx context.Context, id int64) (models.Order, error) {
	return s.Orders.GetByID(ctx, id)
}

func (s OrderService) List(ctx context.Context, c domain.OrderCriteria, page query.PageRequest) (query.Page[models.Order], error) {
	spec, err := query.Orders(c, page)
	if err != nil {
		return query.Page[models.Order]{}, err
	}
	return s.Orders.List(ctx, spec)
}

// Update applies the owner-editable fields of patch to a loaded order.
func (s OrderService) Update(ctx context.Context, o models.Order, patch OrderPatch) (models.Order, error) {
	if patch.ShippingAddress == nil {
		return o, nil
	}
	o.ShippingAddress = strings.TrimSpace(*patch.ShippingAddress)
	if err := s.Orders.UpdateShippingAddress(ctx, o.ID, o.ShippingAddress); err != nil {
		return models.Order{}, err
	}
	return o, nil
}

// ChangeStatus moves the order to an existing status.
func (s OrderService) ChangeStatus(ctx context.Context, o models.Order, statusID int64) (models.Order, error) {
	if _, err := s.Statuses.GetByID(ctx, statusID); err != nil {
		return models.Order{}, err
	}
	if err := s.Orders.UpdateStatus(ctx, o.ID, statusID); err != nil {
		return models.Order{}, err
	}
	o.StatusID = &statusID
	return o, nil
}

func (s OrderService) Delete(ctx context.Context, id int64) error {
	return s.Orders.Delete(ctx, id)
}

func (s OrderService) ItemsOf(ctx context.Context, orderID int64) ([]models.OrderItem, error) {
	return s.Items.ListByOrder(ctx, orderID)
}

func (s OrderService) ListItems(ctx context.Context, c domain.OrderItemCriteria, page query.PageRequest) (query.Page[models.OrderItem], error) {
	spec, err := query.OrderItems(c, page)
	if err != nil {
		return query.Page[models.OrderItem]{}, err
	}
	return s.Items.List(ctx, spec)
}

func (s OrderService) GetItem(ctx context.Context, id int64) (models.OrderItem, error) {
	return s.Items.GetByID(ctx, id)
}

// ValidateItem checks the payload before any lookup or mutation.
func ValidateItem(in OrderItemInput) error {
	if in.Quantity < 1 {
		return domain.ValidationError{Field: "quantity", Msg: "must be at least 1"}
	}
	return nil
}

// AddItem appends a product line to an already loaded order at the product's
// current price.
func (s OrderService) AddItem(ctx context.Context, o models.Order, in OrderItemInput) (models.OrderItem, error) {
	if err := ValidateItem(in); err != nil {
		return models.OrderItem{}, err
	}
	p, err := s.Products.GetByID(ctx, in.ProductID)
	if err != nil {
		return models.OrderItem{}, err
	}
	item := models.OrderItem{
		OrderID:   o.ID,
		ProductID: p.ID,
		Quantity:  in.Quantity,
		Price:     p.Price,
	}
	id, err := s.Items.Create(ctx, item)
	if err != nil {
		return models.OrderItem{}, err
	}
	item.ID = id
	return item, nil
}

func (s OrderService) RemoveItem(ctx context.Context, item models.OrderItem) error {
	return s.Items.Delete(ctx, item)
}
