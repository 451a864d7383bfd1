// Package memory provides an in-process store used when no PostgreSQL DSN is
// configured, and as the backend for service-level tests. All four
// repositories share one mutex, so cross-entity cascades are atomic the same
// way a database transaction makes them.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Betojr04/E-commerceAPI/internal/commerce/domain"
	"github.com/Betojr04/E-commerceAPI/internal/commerce/ports"
)

// Store holds every entity map plus the id counters.
type Store struct {
	mu         sync.RWMutex
	users      map[int64]*domain.User
	categories map[int64]*domain.Category
	products   map[int64]*domain.Product
	orders     map[int64]*domain.Order

	nextUserID     int64
	nextCategoryID int64
	nextProductID  int64
	nextOrderID    int64
}

func NewStore() *Store {
	return &Store{
		users:      map[int64]*domain.User{},
		categories: map[int64]*domain.Category{},
		products:   map[int64]*domain.Product{},
		orders:     map[int64]*domain.Order{},
	}
}

// Users returns the user repository view of the store.
func (s *Store) Users() ports.UserRepository { return &userRepository{s} }

// Categories returns the category repository view of the store.
func (s *Store) Categories() ports.CategoryRepository { return &categoryRepository{s} }

// Products returns the product repository view of the store.
func (s *Store) Products() ports.ProductRepository { return &productRepository{s} }

// Orders returns the order repository view of the store.
func (s *Store) Orders() ports.OrderRepository { return &orderRepository{s} }

type userRepository struct{ s *Store }

var _ ports.UserRepository = (*userRepository)(nil)

func (r *userRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, errors.New("user is nil")
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Email == user.Email {
			return nil, ports.Conflict(fmt.Sprintf("user with email %q already exists", user.Email))
		}
	}
	clone := *user
	r.s.nextUserID++
	clone.ID = r.s.nextUserID
	clone.OrderIDs = nil
	r.s.users[clone.ID] = &clone
	return r.s.userWithOrders(&clone), nil
}

func (r *userRepository) GetByID(_ context.Context, id int64) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	user, ok := r.s.users[id]
	if !ok {
		return nil, ports.NotFound("User")
	}
	return r.s.userWithOrders(user), nil
}

func (r *userRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, user := range r.s.users {
		if user.Email == email {
			return r.s.userWithOrders(user), nil
		}
	}
	return nil, ports.NotFound("User")
}

func (r *userRepository) List(_ context.Context) ([]*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*domain.User, 0, len(r.s.users))
	for _, user := range r.s.users {
		list = append(list, r.s.userWithOrders(user))
	}
	return list, nil
}

func (r *userRepository) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, errors.New("user is nil")
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[user.ID]; !ok {
		return nil, ports.NotFound("User")
	}
	for id, existing := range r.s.users {
		if id != user.ID && existing.Email == user.Email {
			return nil, ports.Conflict(fmt.Sprintf("user with email %q already exists", user.Email))
		}
	}
	clone := *user
	clone.OrderIDs = nil
	r.s.users[clone.ID] = &clone
	return r.s.userWithOrders(&clone), nil
}

// Delete removes the user and cascades to the user's orders. Association
// entries live inside each order, so they go with the orders.
func (r *userRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return ports.NotFound("User")
	}
	for orderID, order := range r.s.orders {
		if order.UserID == id {
			delete(r.s.orders, orderID)
		}
	}
	delete(r.s.users, id)
	return nil
}

type categoryRepository struct{ s *Store }

var _ ports.CategoryRepository = (*categoryRepository)(nil)

func (r *categoryRepository) Create(_ context.Context, category *domain.Category) (*domain.Category, error) {
	if category == nil {
		return nil, errors.New("category is nil")
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.categories {
		if existing.Name == category.Name {
			return nil, ports.Conflict(fmt.Sprintf("category with name %q already exists", category.Name))
		}
	}
	clone := *category
	r.s.nextCategoryID++
	clone.ID = r.s.nextCategoryID
	r.s.categories[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *categoryRepository) GetByID(_ context.Context, id int64) (*domain.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	category, ok := r.s.categories[id]
	if !ok {
		return nil, ports.NotFound("Category")
	}
	clone := *category
	return &clone, nil
}

func (r *categoryRepository) GetByName(_ context.Context, name string) (*domain.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, category := range r.s.categories {
		if category.Name == name {
			clone := *category
			return &clone, nil
		}
	}
	return nil, ports.NotFound("Category")
}

func (r *categoryRepository) List(_ context.Context) ([]*domain.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*domain.Category, 0, len(r.s.categories))
	for _, category := range r.s.categories {
		clone := *category
		list = append(list, &clone)
	}
	return list, nil
}

func (r *categoryRepository) Update(_ context.Context, category *domain.Category) (*domain.Category, error) {
	if category == nil {
		return nil, errors.New("category is nil")
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[category.ID]; !ok {
		return nil, ports.NotFound("Category")
	}
	for id, existing := range r.s.categories {
		if id != category.ID && existing.Name == category.Name {
			return nil, ports.Conflict(fmt.Sprintf("category with name %q already exists", category.Name))
		}
	}
	clone := *category
	r.s.categories[clone.ID] = &clone
	result := clone
	return &result, nil
}

// Delete removes the category, every product in it, and every order/product
// association entry referencing those products. Orders themselves survive,
// possibly with a smaller product set.
func (r *categoryRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[id]; !ok {
		return ports.NotFound("Category")
	}
	for productID, product := range r.s.products {
		if product.CategoryID != id {
			continue
		}
		for _, order := range r.s.orders {
			order.RemoveProduct(productID)
		}
		delete(r.s.products, productID)
	}
	delete(r.s.categories, id)
	return nil
}

type productRepository struct{ s *Store }

var _ ports.ProductRepository = (*productRepository)(nil)

func (r *productRepository) Create(_ context.Context, product *domain.Product) (*domain.Product, error) {
	if product == nil {
		return nil, errors.New("product is nil")
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[product.CategoryID]; !ok {
		return nil, ports.NotFound("Category")
	}
	for _, existing := range r.s.products {
		if existing.Name == product.Name {
			return nil, ports.Conflict(fmt.Sprintf("product with name %q already exists", product.Name))
		}
	}
	clone := *product
	r.s.nextProductID++
	clone.ID = r.s.nextProductID
	r.s.products[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *productRepository) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	product, ok := r.s.products[id]
	if !ok {
		return nil, ports.NotFound("Product")
	}
	clone := *product
	return &clone, nil
}

func (r *productRepository) GetByName(_ context.Context, name string) (*domain.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, product := range r.s.products {
		if product.Name == name {
			clone := *product
			return &clone, nil
		}
	}
	return nil, ports.NotFound("Product")
}

func (r *productRepository) GetByIDs(_ context.Context, ids []int64) ([]*domain.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	seen := make(map[int64]bool, len(ids))
	resolved := make([]*domain.Product, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if product, ok := r.s.products[id]; ok {
			clone := *product
			resolved = append(resolved, &clone)
		}
	}
	return resolved, nil
}

func (r *productRepository) List(_ context.Context) ([]*domain.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*domain.Product, 0, len(r.s.products))
	for _, product := range r.s.products {
		clone := *product
		list = append(list, &clone)
	}
	return list, nil
}

func (r *productRepository) Update(_ context.Context, product *domain.Product) (*domain.Product, error) {
	if product == nil {
		return nil, errors.New("product is nil")
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[product.ID]; !ok {
		return nil, ports.NotFound("Product")
	}
	if _, ok := r.s.categories[product.CategoryID]; !ok {
		return nil, ports.NotFound("Category")
	}
	for id, existing := range r.s.products {
		if id != product.ID && existing.Name == product.Name {
			return nil, ports.Conflict(fmt.Sprintf("product with name %q already exists", product.Name))
		}
	}
	clone := *product
	r.s.products[clone.ID] = &clone
	result := clone
	return &result, nil
}

// Delete removes the product and strips it from every order's product set.
// Orders referencing it survive.
func (r *productRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[id]; !ok {
		return ports.NotFound("Product")
	}
	for _, order := range r.s.orders {
		order.RemoveProduct(id)
	}
	delete(r.s.products, id)
	return nil
}

type orderRepository struct{ s *Store }

var _ ports.OrderRepository = (*orderRepository)(nil)

func (r *orderRepository) Create(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[order.UserID]; !ok {
		return nil, ports.NotFound("User")
	}
	for _, productID := range order.ProductIDs {
		if _, ok := r.s.products[productID]; !ok {
			return nil, ports.NotFoundMsg("One or more products do not exist")
		}
	}
	clone := *order
	clone.ProductIDs = append([]int64(nil), order.ProductIDs...)
	r.s.nextOrderID++
	clone.ID = r.s.nextOrderID
	r.s.orders[clone.ID] = &clone
	return cloneOrder(&clone), nil
}

func (r *orderRepository) GetByID(_ context.Context, id int64) (*domain.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	order, ok := r.s.orders[id]
	if !ok {
		return nil, ports.NotFound("Order")
	}
	return cloneOrder(order), nil
}

func (r *orderRepository) List(_ context.Context) ([]*domain.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*domain.Order, 0, len(r.s.orders))
	for _, order := range r.s.orders {
		list = append(list, cloneOrder(order))
	}
	return list, nil
}

// Update persists ownership reassignment only; the stored order_date and
// product set are kept as created.
func (r *orderRepository) Update(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.orders[order.ID]
	if !ok {
		return nil, ports.NotFound("Order")
	}
	if _, ok := r.s.users[order.UserID]; !ok {
		return nil, ports.NotFound("User")
	}
	stored.UserID = order.UserID
	return cloneOrder(stored), nil
}

func (r *orderRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.orders[id]; !ok {
		return ports.NotFound("Order")
	}
	delete(r.s.orders, id)
	return nil
}

// userWithOrders clones the user and fills in its owned order ids. Caller
// must hold the store lock.
func (s *Store) userWithOrders(user *domain.User) *domain.User {
	clone := *user
	clone.OrderIDs = nil
	for orderID, order := range s.orders {
		if order.UserID == user.ID {
			clone.OrderIDs = append(clone.OrderIDs, orderID)
		}
	}
	return &clone
}

func cloneOrder(order *domain.Order) *domain.Order {
	clone := *order
	clone.ProductIDs = append([]int64(nil), order.ProductIDs...)
	return &clone
}
