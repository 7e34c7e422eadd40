package services

import (
	"context"
	"strings"

	"marketplace/internal/domain"
	"marketplace/internal/domain/models"
	"marketplace/internal/query"
	"marketplace/internal/repositories"
)

type CategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type StatusInput struct {
	Name string `json:"name" binding:"required"`
}

// CatalogService manages the admin-maintained reference data: categories and
// order statuses.
type CatalogService struct {
	Categories repositories.CategoryRepository
	Statuses   repositories.StatusRepository
}

func (s CatalogService) CreateCategory(ctx context.Context, in CategoryInput) (models.Category, error) {
	c := models.Category{Name: strings.TrimSpace(in.Name), Description: in.Description}
	if c.Name == "" {
		return models.Category{}, domain.ValidationError{Field: "name", Msg: "is required"}
	}
	id, err := s.Categories.Create(ctx, c)
	if err != nil {
		return models.Category{}, err
	}
	c.ID = id
	return c, nil
}

func (s CatalogService) GetCategory(ctx context.Context, id int64) (models.Category, error) {
	return s.Categories.GetByID(ctx, id)
}

func (s CatalogService) ListCategories(ctx context.Context, c domain.CategoryCriteria, page query.PageRequest) (query.Page[models.Category], error) {
	spec, err := query.Categories(c, page)
	if err != nil {
		return query.Page[models.Category]{}, err
	}
	return s.Categories.List(ctx, spec)
}

func (s CatalogService) UpdateCategory(ctx context.Context, id int64, in CategoryInput) (models.Category, error) {
	c := models.Category{ID: id, Name: strings.TrimSpace(in.Name), Description: in.Description}
	if c.Name == "" {
		return models.Category{}, domain.ValidationError{Field: "name", Msg: "is required"}
	}
	if err := s.Categories.Update(ctx, c); err != nil {
		return models.Category{}, err
	}
	return c, nil
}

func (s CatalogService) DeleteCategory(ctx context.Context, id int64) error {
	return s.Categories.Delete(ctx, id)
}

func (s CatalogService) CreateStatus(ctx context.Context, in StatusInput) (models.Status, error) {
	st := models.Status{Name: strings.TrimSpace(in.Name)}
	if st.Name == "" {
		return models.Status{}, domain.ValidationError{Field: "name", Msg: "is required"}
	}
	id, err := s.Statuses.Create(ctx, st)
	if err != nil {
		return models.Status{}, err
	}
	st.ID = id
	return st, nil
}

func (s CatalogService) GetStatus(ctx context.Context, id int64) (models.Status, error) {
	return s.Statuses.GetByID(ctx, id)
}

func (s CatalogService) ListStatuses(ctx context.Context, c domain.StatusCriteria, page query.PageRequest) (query.Page[models.Status], error) {
	spec, err := query.Statuses(c, page)
	if err != nil {
		return query.Page[models.Status]{}, err
	}
	return s.Statuses.List(ctx, spec)
}

func (s CatalogService) UpdateStatus(ctx context.Context, id int64, in StatusInput) (models.Status, error) {
	st := models.Status{ID: id, Name: strings.TrimSpace(in.Name)}
	if st.Name == "" {
		return models.Status{}, domain.ValidationError{Field: "name", Msg: "is required"}
	}
	if err := s.Statuses.Update(ctx, st); err != nil {
		return models.Status{}, err
	}
	return st, nil
}

func (s CatalogService) DeleteStatus(ctx context.Context, id int64) error {
	return s.Statuses.Delete(ctx, id)
}
