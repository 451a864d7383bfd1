package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Betojr04/E-commerceAPI/internal/commerce/domain"
	"github.com/Betojr04/E-commerceAPI/internal/commerce/ports"
)

var _ ports.CategoryRepository = (*CategoryRepository)(nil)

// CategoryRepository persists categories in PostgreSQL using GORM.
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	if err := r.ensure(); err != nil {
		return nil, err
	}
	if category == nil {
		return nil, errors.New("category is nil")
	}
	record := categoryRecord{Name: category.Name}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, translate(err, "Category", fmt.Sprintf("category with name %q already exists", category.Name))
	}
	return record.toDomain(), nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	if err := r.ensure(); err != nil {
		return nil, err
	}
	var record categoryRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		return nil, translate(err, "Category", "")
	}
	return record.toDomain(), nil
}

func (r *CategoryRepository) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	if err := r.ensure(); err != nil {
		return nil, err
	}
	var record categoryRecord
	if err := r.db.WithContext(ctx).First(&record, "category_name = ?", name).Error; err != nil {
		return nil, translate(err, "Category", "")
	}
	return record.toDomain(), nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	if err := r.ensure(); err != nil {
		return nil, err
	}
	var records []categoryRecord
	if err := r.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, err
	}
	categories := make([]*domain.Category, 0, len(records))
	for i := range records {
		categories = append(categories, records[i].toDomain())
	}
	return categories, nil
}

func (r *CategoryRepository) Update(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	if err := r.ensure(); err != nil {
		return nil, err
	}
	if category == nil {
		return nil, errors.New("category is nil")
	}
	result := r.db.WithContext(ctx).
		Model(&categoryRecord{}).
		Where("id = ?", category.ID).
		Update("category_name", category.Name)
	if result.Error != nil {
		return nil, translate(result.Error, "Category", fmt.Sprintf("category with name %q already exists", category.Name))
	}
	if result.RowsAffected == 0 {
		return nil, ports.NotFound("Category")
	}
	return r.GetByID(ctx, category.ID)
}

// Delete removes the category, its products, and every association row
// referencing those products, all in one transaction. Orders survive with a
// smaller product set.
func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	if err := r.ensure(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var productIDs []int64
		if err := tx.Model(&productRecord{}).Where("category_id = ?", id).Pluck("id", &productIDs).Error; err != nil {
			return err
		}
		if len(productIDs) > 0 {
			if err := tx.Where("product_id IN ?", productIDs).Delete(&orderProductRecord{}).Error; err != nil {
				return err
			}
			if err := tx.Where("category_id = ?", id).Delete(&productRecord{}).Error; err != nil {
				return err
			}
		}
		result := tx.Delete(&categoryRecord{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ports.NotFound("Category")
		}
		return nil
	})
}

func (r *CategoryRepository) ensure() error {
	if r == nil || r.db == nil {
		return errNotConfigured
	}
	return nil
}

func (rec categoryRecord) toDomain() *domain.Category {
	return &domain.Category{ID: rec.ID, Name: rec.Name}
}
