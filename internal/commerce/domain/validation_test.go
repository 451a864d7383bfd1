package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser_Valid(t *testing.T) {
	user, err := NewUser("  Alice  ", " alice@example.com ")
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestNewUser_CollectsAllFieldErrors(t *testing.T) {
	_, err := NewUser("", "not-an-email")
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"name is required"}, verr.Fields["name"])
	assert.Equal(t, []string{"email must be a valid email address"}, verr.Fields["email"])
}

func TestNewUser_FieldLengths(t *testing.T) {
	_, err := NewUser(strings.Repeat("a", 31), "alice@example.com")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"name must be at most 30 characters"}, verr.Fields["name"])

	_, err = NewUser("Alice", strings.Repeat("a", 25)+"@example.com")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"email must be at most 30 characters"}, verr.Fields["email"])
}

func TestNewCategory_Valid(t *testing.T) {
	category, err := NewCategory(" Electronics ")
	require.NoError(t, err)
	assert.Equal(t, "Electronics", category.Name)
}

func TestNewCategory_NameRequired(t *testing.T) {
	_, err := NewCategory("   ")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"category_name is required"}, verr.Fields["category_name"])
}

func TestNewProduct_Valid(t *testing.T) {
	product, err := NewProduct("Keyboard", 0, 1)
	require.NoError(t, err)
	assert.Equal(t, "Keyboard", product.Name)
	assert.Zero(t, product.Price)
}

func TestNewProduct_NegativePrice(t *testing.T) {
	_, err := NewProduct("Keyboard", -1.50, 1)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"Price must be positive!"}, verr.Fields["price"])
}

func TestNewOrder_RequiresProducts(t *testing.T) {
	_, err := NewOrder(1, nil, time.Now())
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"At least one product is required"}, verr.Fields["product_ids"])
}

func TestOrder_RemoveProduct(t *testing.T) {
	order, err := NewOrder(1, []int64{1, 2, 3}, time.Now())
	require.NoError(t, err)

	order.RemoveProduct(2)
	assert.Equal(t, []int64{1, 3}, order.ProductIDs)
	assert.False(t, order.HasProduct(2))
	assert.True(t, order.HasProduct(3))

	order.RemoveProduct(1)
	order.RemoveProduct(3)
	assert.Empty(t, order.ProductIDs)
}

func TestValidationError_Message(t *testing.T) {
	err := NewValidationError("price", "Price must be positive!")
	assert.Equal(t, "validation failed: price: Price must be positive!", err.Error())
}
