package postgres

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Betojr04/E-commerceAPI/internal/commerce/ports"
)

// Relational schema for the commerce context. Referential integrity and
// cascades are enforced explicitly by the repositories inside transactions;
// the unique indexes are the backstop for creates racing past the service
// pre-checks.

type userRecord struct {
	ID        int64     `gorm:"primaryKey;column:id"`
	Name      string    `gorm:"column:name;type:varchar(30);not null"`
	Email     string    `gorm:"column:email;type:varchar(30);not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (userRecord) TableName() string { return "users" }

type categoryRecord struct {
	ID        int64     `gorm:"primaryKey;column:id"`
	Name      string    `gorm:"column:category_name;type:varchar(100);not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (categoryRecord) TableName() string { return "categories" }

type productRecord struct {
	ID         int64     `gorm:"primaryKey;column:id"`
	Name       string    `gorm:"column:product_name;type:varchar(50);not null;uniqueIndex"`
	Price      float64   `gorm:"column:price;not null"`
	CategoryID int64     `gorm:"column:category_id;not null;index"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (productRecord) TableName() string { return "products" }

type orderRecord struct {
	ID        int64     `gorm:"primaryKey;column:id"`
	OrderDate time.Time `gorm:"column:order_date;not null"`
	UserID    int64     `gorm:"column:user_id;not null;index"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (orderRecord) TableName() string { return "orders" }

// orderProductRecord is the order/product association. The composite primary
// key means a product appears in an order at most once.
type orderProductRecord struct {
	OrderID   int64 `gorm:"primaryKey;column:order_id"`
	ProductID int64 `gorm:"primaryKey;column:product_id"`
}

func (orderProductRecord) TableName() string { return "order_products" }

// Migrate applies the schema for the commerce context.
func Migrate(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&userRecord{},
		&categoryRecord{},
		&productRecord{},
		&orderRecord{},
		&orderProductRecord{},
	)
}

var errNotConfigured = errors.New("postgres repository not configured")

// translate maps store failures to the typed errors the services and
// transport understand. Requires gorm's TranslateError so unique-constraint
// rejections arrive as ErrDuplicatedKey.
func translate(err error, entity, conflictDetail string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ports.NotFound(entity)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ports.Conflict(conflictDetail)
	default:
		return err
	}
}
