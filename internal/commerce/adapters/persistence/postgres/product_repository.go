package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Betojr04/E-commerceAPI/internal/commerce/domain"
	"github.com/Betojr04/E-commerceAPI/internal/commerce/ports"
)

var _ ports.ProductRepository = (*ProductRepository)(nil)

// ProductRepository persists products in PostgreSQL using GORM.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := r.ensure(); err != nil {
		return nil, err
	}
	if product == nil {
		return nil, errors.New("product is nil")
	}
	record := productRecord{Name: product.Name, Price: product.Price, CategoryID: product.CategoryID}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, translate(err, "Product", fmt.Sprintf("product with name %q already exists", product.Name))
	}
	return record.toDomain(), nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	if err := r.ensure(); err != nil {
		return nil, err
	}
	var record productRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		return nil, translate(err, "Product", "")
	}
	return record.toDomain(), nil
}

func (r *ProductRepository) GetByName(ctx context.Context, name string) (*domain.Product, error) {
	if err := r.ensure(); err != nil {
		return nil, err
	}
	var record productRecord
	if err := r.db.WithContext(ctx).First(&record, "product_name = ?", name).Error; err != nil {
		return nil, translate(err, "Product", "")
	}
	return record.toDomain(), nil
}

func (r *ProductRepository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Product, error) {
	if err := r.ensure(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}
	var records []productRecord
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&records).Error; err != nil {
		return nil, err
	}
	products := make([]*domain.Product, 0, len(records))
	for i := range records {
		products = append(products, records[i].toDomain())
	}
	return products, nil
}

func (r *ProductRepository) List(ctx context.Context) ([]*domain.Product, error) {
	if err := r.ensure(); err != nil {
		return nil, err
	}
	var records []productRecord
	if err := r.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, err
	}
	products := make([]*domain.Product, 0, len(records))
	for i := range records {
		products = append(products, records[i].toDomain())
	}
	return products, nil
}

func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := r.ensure(); err != nil {
		return nil, err
	}
	if product == nil {
		return nil, errors.New("product is nil")
	}
	result := r.db.WithContext(ctx).
		Model(&productRecord{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"product_name": product.Name,
			"price":        product.Price,
			"category_id":  product.CategoryID,
		})
	if result.Error != nil {
		return nil, translate(result.Error, "Product", fmt.Sprintf("product with name %q already exists", product.Name))
	}
	if result.RowsAffected == 0 {
		return nil, ports.NotFound("Product")
	}
	return r.GetByID(ctx, product.ID)
}

// Delete removes the product and its association rows. Orders that carried
// the product survive without it.
func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	if err := r.ensure(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&orderProductRecord{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&productRecord{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ports.NotFound("Product")
		}
		return nil
	})
}

func (r *ProductRepository) ensure() error {
	if r == nil || r.db == nil {
		return errNotConfigured
	}
	return nil
}

func (rec productRecord) toDomain() *domain.Product {
	return &domain.Product{
		ID:         rec.ID,
		Name:       rec.Name,
		Price:      rec.Price,
		CategoryID: rec.CategoryID,
	}
}
