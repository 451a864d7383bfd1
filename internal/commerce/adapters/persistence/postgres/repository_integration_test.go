//go:build integration
// +build integration

// To enable gopls support for this file, add the following to your VSCode settings.json:
// "gopls": {
//   "buildFlags": ["-tags=integration"]
// }

package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Betojr04/E-commerceAPI/internal/commerce/domain"
	"github.com/Betojr04/E-commerceAPI/internal/commerce/ports"
)

func setupPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("commerce_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	// TranslateError matters: conflict mapping relies on ErrDuplicatedKey.
	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, Migrate(db))

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

type repoFixture struct {
	users      *UserRepository
	categories *CategoryRepository
	products   *ProductRepository
	orders     *OrderRepository
}

func newRepoFixture(db *gorm.DB) *repoFixture {
	return &repoFixture{
		users:      NewUserRepository(db),
		categories: NewCategoryRepository(db),
		products:   NewProductRepository(db),
		orders:     NewOrderRepository(db),
	}
}

func (f *repoFixture) seedCatalog(t *testing.T, ctx context.Context) (*domain.User, *domain.Category, []*domain.Product) {
	t.Helper()
	user, err := f.users.Create(ctx, &domain.User{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)
	category, err := f.categories.Create(ctx, &domain.Category{Name: "Electronics"})
	require.NoError(t, err)
	keyboard, err := f.products.Create(ctx, &domain.Product{Name: "Keyboard", Price: 49.99, CategoryID: category.ID})
	require.NoError(t, err)
	mouse, err := f.products.Create(ctx, &domain.Product{Name: "Mouse", Price: 19.99, CategoryID: category.ID})
	require.NoError(t, err)
	return user, category, []*domain.Product{keyboard, mouse}
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewUserRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.User{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.Empty(t, created.OrderIDs)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, "alice@example.com", got.Email)

	byEmail, err := repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	_, err = repo.GetByID(ctx, 404)
	assert.True(t, errors.Is(err, ports.ErrNotFound))
}

func TestUserRepository_DuplicateEmailConflict(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.User{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)

	// The unique index catches what a racing pre-check would miss.
	_, err = repo.Create(ctx, &domain.User{Name: "Other", Email: "alice@example.com"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ports.ErrConflict))
	assert.Contains(t, err.Error(), "alice@example.com")
}

func TestUserRepository_DeleteCascadesOrders(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	f := newRepoFixture(db)
	ctx := context.Background()

	user, _, products := f.seedCatalog(t, ctx)
	order, err := f.orders.Create(ctx, &domain.Order{
		OrderDate:  time.Now().UTC(),
		UserID:     user.ID,
		ProductIDs: []int64{products[0].ID, products[1].ID},
	})
	require.NoError(t, err)

	require.NoError(t, f.users.Delete(ctx, user.ID))

	_, err = f.orders.GetByID(ctx, order.ID)
	assert.True(t, errors.Is(err, ports.ErrNotFound))

	// No orphaned association rows survive the cascade.
	var count int64
	require.NoError(t, db.Model(&orderProductRecord{}).Where("order_id = ?", order.ID).Count(&count).Error)
	assert.Zero(t, count)

	// Products are untouched.
	_, err = f.products.GetByID(ctx, products[0].ID)
	assert.NoError(t, err)
}

func TestCategoryRepository_DeleteCascadesProducts(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	f := newRepoFixture(db)
	ctx := context.Background()

	user, electronics, products := f.seedCatalog(t, ctx)
	books, err := f.categories.Create(ctx, &domain.Category{Name: "Books"})
	require.NoError(t, err)
	novel, err := f.products.Create(ctx, &domain.Product{Name: "Novel", Price: 9.99, CategoryID: books.ID})
	require.NoError(t, err)

	order, err := f.orders.Create(ctx, &domain.Order{
		OrderDate:  time.Now().UTC(),
		UserID:     user.ID,
		ProductIDs: []int64{products[0].ID, novel.ID},
	})
	require.NoError(t, err)

	require.NoError(t, f.categories.Delete(ctx, electronics.ID))

	_, err = f.products.GetByID(ctx, products[0].ID)
	assert.True(t, errors.Is(err, ports.ErrNotFound))
	_, err = f.products.GetByID(ctx, products[1].ID)
	assert.True(t, errors.Is(err, ports.ErrNotFound))

	// The order survives with only the product from the other category.
	got, err := f.orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{novel.ID}, got.ProductIDs)
}

func TestProductRepository_DeleteStripsOrders(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	f := newRepoFixture(db)
	ctx := context.Background()

	user, _, products := f.seedCatalog(t, ctx)
	order, err := f.orders.Create(ctx, &domain.Order{
		OrderDate:  time.Now().UTC(),
		UserID:     user.ID,
		ProductIDs: []int64{products[0].ID, products[1].ID},
	})
	require.NoError(t, err)

	require.NoError(t, f.products.Delete(ctx, products[0].ID))

	got, err := f.orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{products[1].ID}, got.ProductIDs)
}

func TestOrderRepository_CreateAndListRoundtrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	f := newRepoFixture(db)
	ctx := context.Background()

	user, _, products := f.seedCatalog(t, ctx)
	stamp := time.Date(2025, time.March, 14, 9, 26, 53, 0, time.UTC)

	order, err := f.orders.Create(ctx, &domain.Order{
		OrderDate:  stamp,
		UserID:     user.ID,
		ProductIDs: []int64{products[0].ID, products[1].ID},
	})
	require.NoError(t, err)
	require.NotZero(t, order.ID)
	assert.Equal(t, []int64{products[0].ID, products[1].ID}, order.ProductIDs)
	assert.True(t, stamp.Equal(order.OrderDate))

	list, err := f.orders.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, order.ID, list[0].ID)
	assert.Equal(t, []int64{products[0].ID, products[1].ID}, list[0].ProductIDs)

	// The owning user reports the order id.
	got, err := f.users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{order.ID}, got.OrderIDs)
}

func TestOrderRepository_UpdateReassignsOwner(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	f := newRepoFixture(db)
	ctx := context.Background()

	alice, _, products := f.seedCatalog(t, ctx)
	bob, err := f.users.Create(ctx, &domain.User{Name: "Bob", Email: "bob@example.com"})
	require.NoError(t, err)

	order, err := f.orders.Create(ctx, &domain.Order{
		OrderDate:  time.Now().UTC(),
		UserID:     alice.ID,
		ProductIDs: []int64{products[0].ID},
	})
	require.NoError(t, err)

	order.UserID = bob.ID
	updated, err := f.orders.Update(ctx, order)
	require.NoError(t, err)
	assert.Equal(t, bob.ID, updated.UserID)
	assert.Equal(t, []int64{products[0].ID}, updated.ProductIDs)
}
