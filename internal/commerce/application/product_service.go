package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/Betojr04/E-commerceAPI/internal/commerce/domain"
	"github.com/Betojr04/E-commerceAPI/internal/commerce/ports"
)

// ProductService implements the product management use cases. The category
// reference is checked explicitly on both create and update, so a dangling
// category_id never reaches the store.
type ProductService struct {
	products   ports.ProductRepository
	categories ports.CategoryRepository
}

func NewProductService(products ports.ProductRepository, categories ports.CategoryRepository) *ProductService {
	return &ProductService{products: products, categories: categories}
}

func (s *ProductService) Create(ctx context.Context, name string, price float64, categoryID int64) (*domain.Product, error) {
	product, err := domain.NewProduct(name, price, categoryID)
	if err != nil {
		return nil, err
	}
	if err := s.ensureCategoryExists(ctx, product.CategoryID); err != nil {
		return nil, err
	}
	if err := s.ensureNameFree(ctx, product.Name, 0); err != nil {
		return nil, err
	}
	return s.products.Create(ctx, product)
}

func (s *ProductService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.products.List(ctx)
}

func (s *ProductService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	return s.products.GetByID(ctx, id)
}

func (s *ProductService) Update(ctx context.Context, id int64, name string, price float64, categoryID int64) (*domain.Product, error) {
	existing, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	updated, err := domain.NewProduct(name, price, categoryID)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	if err := s.ensureCategoryExists(ctx, updated.CategoryID); err != nil {
		return nil, err
	}
	if err := s.ensureNameFree(ctx, updated.Name, existing.ID); err != nil {
		return nil, err
	}
	return s.products.Update(ctx, updated)
}

func (s *ProductService) Delete(ctx context.Context, id int64) (*domain.Product, error) {
	existing, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.products.Delete(ctx, id); err != nil {
		return nil, err
	}
	return existing, nil
}

// ensureCategoryExists reports a missing category as a client-correctable
// validation failure on category_id rather than a bare not-found.
func (s *ProductService) ensureCategoryExists(ctx context.Context, categoryID int64) error {
	_, err := s.categories.GetByID(ctx, categoryID)
	if errors.Is(err, ports.ErrNotFound) {
		return domain.NewValidationError("category_id", "Category not found")
	}
	return err
}

func (s *ProductService) ensureNameFree(ctx context.Context, name string, selfID int64) error {
	existing, err := s.products.GetByName(ctx, name)
	if errors.Is(err, ports.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != selfID {
		return ports.Conflict(fmt.Sprintf("product with name %q already exists", name))
	}
	return nil
}

var _ ports.ProductService = (*ProductService)(nil)
