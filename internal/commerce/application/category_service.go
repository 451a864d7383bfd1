package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/Betojr04/E-commerceAPI/internal/commerce/domain"
	"github.com/Betojr04/E-commerceAPI/internal/commerce/ports"
)

// CategoryService implements the category management use cases. Deleting a
// category is destructive: it removes every product in it and every
// order/product association row referencing those products.
type CategoryService struct {
	categories ports.CategoryRepository
}

func NewCategoryService(categories ports.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) Create(ctx context.Context, name string) (*domain.Category, error) {
	category, err := domain.NewCategory(name)
	if err != nil {
		return nil, err
	}
	if err := s.ensureNameFree(ctx, category.Name, 0); err != nil {
		return nil, err
	}
	return s.categories.Create(ctx, category)
}

func (s *CategoryService) List(ctx context.Context) ([]*domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id int64) (*domain.Category, error) {
	return s.categories.GetByID(ctx, id)
}

func (s *CategoryService) Update(ctx context.Context, id int64, name string) (*domain.Category, error) {
	existing, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	updated, err := domain.NewCategory(name)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	if err := s.ensureNameFree(ctx, updated.Name, existing.ID); err != nil {
		return nil, err
	}
	return s.categories.Update(ctx, updated)
}

func (s *CategoryService) Delete(ctx context.Context, id int64) (*domain.Category, error) {
	existing, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.categories.Delete(ctx, id); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *CategoryService) ensureNameFree(ctx context.Context, name string, selfID int64) error {
	existing, err := s.categories.GetByName(ctx, name)
	if errors.Is(err, ports.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != selfID {
		return ports.Conflict(fmt.Sprintf("category with name %q already exists", name))
	}
	return nil
}

var _ ports.CategoryService = (*CategoryService)(nil)
