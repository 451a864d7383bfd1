package application

import (
	"context"
	"time"

	"github.com/Betojr04/E-commerceAPI/internal/commerce/domain"
	"github.com/Betojr04/E-commerceAPI/internal/commerce/ports"
)

// OrderService implements the order management use cases. Order creation is
// all-or-nothing: every referenced product must resolve before the order row
// is ever written, and the order plus its association rows are persisted in
// one transaction by the repository.
type OrderService struct {
	orders   ports.OrderRepository
	users    ports.UserRepository
	products ports.ProductRepository

	now func() time.Time
}

func NewOrderService(orders ports.OrderRepository, users ports.UserRepository, products ports.ProductRepository) *OrderService {
	return &OrderService{
		orders:   orders,
		users:    users,
		products: products,
		now:      time.Now,
	}
}

func (s *OrderService) Create(ctx context.Context, userID int64, productIDs []int64) (*domain.Order, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	if len(productIDs) == 0 {
		return nil, domain.NewValidationError("product_ids", "At least one product is required")
	}
	resolved, err := s.products.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	// Duplicate ids collapse during resolution and fail this check, same as
	// an id that does not exist.
	if len(resolved) != len(productIDs) {
		return nil, ports.NotFoundMsg("One or more products do not exist")
	}
	ids := make([]int64, 0, len(resolved))
	for _, product := range resolved {
		ids = append(ids, product.ID)
	}
	order, err := domain.NewOrder(userID, ids, s.now().UTC())
	if err != nil {
		return nil, err
	}
	return s.orders.Create(ctx, order)
}

func (s *OrderService) List(ctx context.Context) ([]*domain.Order, error) {
	return s.orders.List(ctx)
}

func (s *OrderService) Get(ctx context.Context, id int64) (*domain.Order, error) {
	return s.orders.GetByID(ctx, id)
}

// Update reassigns ownership only. The product set is immutable through this
// path; changing it means delete-and-recreate.
func (s *OrderService) Update(ctx context.Context, id int64, userID int64) (*domain.Order, error) {
	existing, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	existing.UserID = userID
	return s.orders.Update(ctx, existing)
}

func (s *OrderService) Delete(ctx context.Context, id int64) error {
	if _, err := s.orders.GetByID(ctx, id); err != nil {
		return err
	}
	return s.orders.Delete(ctx, id)
}

var _ ports.OrderService = (*OrderService)(nil)
