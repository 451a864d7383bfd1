package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Betojr04/E-commerceAPI/internal/commerce/domain"
	"github.com/Betojr04/E-commerceAPI/internal/commerce/ports"
)

var _ ports.OrderRepository = (*OrderRepository)(nil)

// OrderRepository persists orders and their product associations in
// PostgreSQL using GORM.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create writes the order row and its association rows in one transaction;
// a failure on either leaves nothing behind.
func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := r.ensure(); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("order is nil")
	}
	record := orderRecord{OrderDate: order.OrderDate, UserID: order.UserID}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
		associations := make([]orderProductRecord, 0, len(order.ProductIDs))
		for _, productID := range order.ProductIDs {
			associations = append(associations, orderProductRecord{OrderID: record.ID, ProductID: productID})
		}
		return tx.Create(&associations).Error
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	if err := r.ensure(); err != nil {
		return nil, err
	}
	var record orderRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		return nil, translate(err, "Order", "")
	}
	var productIDs []int64
	err := r.db.WithContext(ctx).
		Model(&orderProductRecord{}).
		Where("order_id = ?", id).
		Order("product_id").
		Pluck("product_id", &productIDs).Error
	if err != nil {
		return nil, err
	}
	return record.toDomain(productIDs), nil
}

func (r *OrderRepository) List(ctx context.Context) ([]*domain.Order, error) {
	if err := r.ensure(); err != nil {
		return nil, err
	}
	var records []orderRecord
	if err := r.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, err
	}
	var associations []orderProductRecord
	if err := r.db.WithContext(ctx).Order("product_id").Find(&associations).Error; err != nil {
		return nil, err
	}
	byOrder := make(map[int64][]int64, len(records))
	for _, association := range associations {
		byOrder[association.OrderID] = append(byOrder[association.OrderID], association.ProductID)
	}
	orders := make([]*domain.Order, 0, len(records))
	for i := range records {
		orders = append(orders, records[i].toDomain(byOrder[records[i].ID]))
	}
	return orders, nil
}

// Update persists ownership reassignment only; order_date and the product
// set never change through this path.
func (r *OrderRepository) Update(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := r.ensure(); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("order is nil")
	}
	result := r.db.WithContext(ctx).
		Model(&orderRecord{}).
		Where("id = ?", order.ID).
		Update("user_id", order.UserID)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ports.NotFound("Order")
	}
	return r.GetByID(ctx, order.ID)
}

// Delete removes the order and its association rows; products and the owning
// user are untouched.
func (r *OrderRepository) Delete(ctx context.Context, id int64) error {
	if err := r.ensure(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&orderProductRecord{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&orderRecord{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ports.NotFound("Order")
		}
		return nil
	})
}

func (r *OrderRepository) ensure() error {
	if r == nil || r.db == nil {
		return errNotConfigured
	}
	return nil
}

func (rec orderRecord) toDomain(productIDs []int64) *domain.Order {
	return &domain.Order{
		ID:         rec.ID,
		OrderDate:  rec.OrderDate,
		UserID:     rec.UserID,
		ProductIDs: productIDs,
	}
}
