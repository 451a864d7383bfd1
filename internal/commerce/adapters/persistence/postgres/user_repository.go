package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Betojr04/E-commerceAPI/internal/commerce/domain"
	"github.com/Betojr04/E-commerceAPI/internal/commerce/ports"
)

var _ ports.UserRepository = (*UserRepository)(nil)

// UserRepository persists users in PostgreSQL using GORM.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository wires a PostgreSQL-backed repository. Caller manages the
// DB lifecycle and schema migration.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := r.ensure(); err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user is nil")
	}
	record := userRecord{Name: user.Name, Email: user.Email}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, translate(err, "User", fmt.Sprintf("user with email %q already exists", user.Email))
	}
	return r.GetByID(ctx, record.ID)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if err := r.ensure(); err != nil {
		return nil, err
	}
	var record userRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		return nil, translate(err, "User", "")
	}
	orderIDs, err := r.orderIDsFor(ctx, record.ID)
	if err != nil {
		return nil, err
	}
	return record.toDomain(orderIDs), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if err := r.ensure(); err != nil {
		return nil, err
	}
	var record userRecord
	if err := r.db.WithContext(ctx).First(&record, "email = ?", email).Error; err != nil {
		return nil, translate(err, "User", "")
	}
	orderIDs, err := r.orderIDsFor(ctx, record.ID)
	if err != nil {
		return nil, err
	}
	return record.toDomain(orderIDs), nil
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	if err := r.ensure(); err != nil {
		return nil, err
	}
	var records []userRecord
	if err := r.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, err
	}
	var orders []orderRecord
	if err := r.db.WithContext(ctx).Select("id", "user_id").Find(&orders).Error; err != nil {
		return nil, err
	}
	byUser := make(map[int64][]int64, len(records))
	for _, order := range orders {
		byUser[order.UserID] = append(byUser[order.UserID], order.ID)
	}
	users := make([]*domain.User, 0, len(records))
	for i := range records {
		users = append(users, records[i].toDomain(byUser[records[i].ID]))
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := r.ensure(); err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user is nil")
	}
	result := r.db.WithContext(ctx).
		Model(&userRecord{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{"name": user.Name, "email": user.Email})
	if result.Error != nil {
		return nil, translate(result.Error, "User", fmt.Sprintf("user with email %q already exists", user.Email))
	}
	if result.RowsAffected == 0 {
		return nil, ports.NotFound("User")
	}
	return r.GetByID(ctx, user.ID)
}

// Delete removes the user and cascades through its orders and their
// association rows in one transaction.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	if err := r.ensure(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var orderIDs []int64
		if err := tx.Model(&orderRecord{}).Where("user_id = ?", id).Pluck("id", &orderIDs).Error; err != nil {
			return err
		}
		if len(orderIDs) > 0 {
			if err := tx.Where("order_id IN ?", orderIDs).Delete(&orderProductRecord{}).Error; err != nil {
				return err
			}
			if err := tx.Where("user_id = ?", id).Delete(&orderRecord{}).Error; err != nil {
				return err
			}
		}
		result := tx.Delete(&userRecord{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ports.NotFound("User")
		}
		return nil
	})
}

func (r *UserRepository) orderIDsFor(ctx context.Context, userID int64) ([]int64, error) {
	var orderIDs []int64
	err := r.db.WithContext(ctx).
		Model(&orderRecord{}).
		Where("user_id = ?", userID).
		Order("id").
		Pluck("id", &orderIDs).Error
	return orderIDs, err
}

func (r *UserRepository) ensure() error {
	if r == nil || r.db == nil {
		return errNotConfigured
	}
	return nil
}

func (rec userRecord) toDomain(orderIDs []int64) *domain.User {
	return &domain.User{
		ID:       rec.ID,
		Name:     rec.Name,
		Email:    rec.Email,
		OrderIDs: orderIDs,
	}
}
