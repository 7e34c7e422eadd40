package services

import (
	"context"
	"strings"
	"time"

	"marketplace/internal/domain"
	"marketplace/internal/domain/models"
	"marketplace/internal/query"
	"marketplace/internal/repositories"
)

type ProductInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"gte=0"`
	Quantity    int     `json:"quantity" binding:"gte=0"`
	CategoryID  int64   `json:"categoryId" binding:"required,gt=0"`
}

type ProductPatch struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	Quantity    *int     `json:"quantity" binding:"omitempty,gte=0"`
	CategoryID  *int64   `json:"categoryId" binding:"omitempty,gt=0"`
}

type ProductService struct {
	Products   repositories.ProductRepository
	Categories repositories.CategoryRepository
}

// Create lists a product for sellerID after checking its category exists.
func (s ProductService) Create(ctx context.Context, sellerID int64, in ProductInput) (models.Product, error) {
	p := models.Product{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Quantity:    in.Quantity,
		SellerID:    sellerID,
		CategoryID:  in.CategoryID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := validateProduct(p); err != nil {
		return models.Product{}, err
	}
	if _, err := s.Categories.GetByID(ctx, p.CategoryID); err != nil {
		return models.Product{}, err
	}
	id, err := s.Products.Create(ctx, p)
	if err != nil {
		return models.Product{}, err
	}
	p.ID = id
	return p, nil
}

func (s ProductService) Get(ctx context.Context, id int64) (models.Product, error) {
	return s.Products.GetByID(ctx, id)
}

func (s ProductService) List(ctx context.Context, c domain.ProductCriteria, page query.PageRequest) (query.Page[models.Product], error) {
	spec, err := query.Products(c, page)
	if err != nil {
		return query.Page[models.Product]{}, err
	}
	return s.Products.List(ctx, spec)
}

// Update applies patch to an already loaded product.
func (s ProductService) Update(ctx context.Context, p models.Product, patch ProductPatch) (models.Product, error) {
	if patch.Name != nil {
		p.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Quantity != nil {
		p.Quantity = *patch.Quantity
	}
	if patch.CategoryID != nil && *patch.CategoryID != p.CategoryID {
		if _, err := s.Categories.GetByID(ctx, *patch.CategoryID); err != nil {
			return models.Product{}, err
		}
		p.CategoryID = *patch.CategoryID
	}
	if err := validateProduct(p); err != nil {
		return models.Product{}, err
	}
	if err := s.Products.Update(ctx, p); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

func (s ProductService) Delete(ctx context.Context, id int64) error {
	return s.Products.Delete(ctx, id)
}

func validateProduct(p models.Product) error {
	switch {
	case p.Name == "":
		return domain.ValidationError{Field: "name", Msg: "is required"}
	case p.Price < 0:
		return domain.ValidationError{Field: "price", Msg: "must not be negative"}
	case p.Quantity < 0:
		return domain.ValidationError{Field: "quantity", Msg: "must not be negative"}
	}
	return nil
}
