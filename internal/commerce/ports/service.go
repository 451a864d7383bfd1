package ports

import (
	"context"

	"github.com/Betojr04/E-commerceAPI/internal/commerce/domain"
)

// UserService exposes the user management use cases.
type UserService interface {
	Create(ctx context.Context, name, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, name, email string) (*domain.User, error)
	// Delete returns the removed user so callers can report who was deleted.
	Delete(ctx context.Context, id int64) (*domain.User, error)
}

// CategoryService exposes the category management use cases.
type CategoryService interface {
	Create(ctx context.Context, name string) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Get(ctx context.Context, id int64) (*domain.Category, error)
	Update(ctx context.Context, id int64, name string) (*domain.Category, error)
	Delete(ctx context.Context, id int64) (*domain.Category, error)
}

// ProductService exposes the product management use cases.
type ProductService interface {
	Create(ctx context.Context, name string, price float64, categoryID int64) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	Update(ctx context.Context, id int64, name string, price float64, categoryID int64) (*domain.Product, error)
	Delete(ctx context.Context, id int64) (*domain.Product, error)
}

// OrderService exposes the order management use cases.
type OrderService interface {
	Create(ctx context.Context, userID int64, productIDs []int64) (*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
	Get(ctx context.Context, id int64) (*domain.Order, error)
	Update(ctx context.Context, id int64, userID int64) (*domain.Order, error)
	Delete(ctx context.Context, id int64) error
}
