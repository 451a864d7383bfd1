package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Betojr04/E-commerceAPI/internal/commerce/adapters/memory"
	"github.com/Betojr04/E-commerceAPI/internal/commerce/application"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	store := memory.NewStore()
	handlers := Handlers{
		Users:      NewUserAPI(application.NewUserService(store.Users())),
		Categories: NewCategoryAPI(application.NewCategoryService(store.Categories())),
		Products:   NewProductAPI(application.NewProductService(store.Products(), store.Categories())),
		Orders:     NewOrderAPI(application.NewOrderService(store.Orders(), store.Users(), store.Products())),
	}
	return NewRouter(handlers, RequestID())
}

func perform(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), target))
}

func TestCreateUser(t *testing.T) {
	router := setupRouter()

	rec := perform(t, router, http.MethodPost, "/users", gin.H{"name": "Alice", "email": "alice@example.com"})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))

	var user User
	decode(t, rec, &user)
	assert.Equal(t, int64(1), user.Id)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, []int64{}, user.Orders)
}

func TestCreateUser_MissingFields(t *testing.T) {
	router := setupRouter()

	rec := perform(t, router, http.MethodPost, "/users", gin.H{"email": "alice@example.com"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var fields map[string][]string
	decode(t, rec, &fields)
	assert.Equal(t, []string{"name is required"}, fields["name"])
}

func TestCreateUser_MalformedJSON(t *testing.T) {
	router := setupRouter()

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]string
	decode(t, rec, &body)
	assert.NotEmpty(t, body["error"])
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	router := setupRouter()

	rec := perform(t, router, http.MethodPost, "/users", gin.H{"name": "Alice", "email": "alice@example.com"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = perform(t, router, http.MethodPost, "/users", gin.H{"name": "Other", "email": "alice@example.com"})
	require.Equal(t, http.StatusConflict, rec.Code)

	var body map[string]string
	decode(t, rec, &body)
	assert.Contains(t, body["error"], "alice@example.com")
}

func TestGetUser_NotFound(t *testing.T) {
	router := setupRouter()

	for _, path := range []string{"/user/999", "/user/abc", "/user/0"} {
		rec := perform(t, router, http.MethodGet, path, nil)
		require.Equal(t, http.StatusNotFound, rec.Code, path)

		var body map[string]string
		decode(t, rec, &body)
		assert.Equal(t, "User not found", body["error"])
	}
}

func TestUpdateAndDeleteUser(t *testing.T) {
	router := setupRouter()

	rec := perform(t, router, http.MethodPost, "/users", gin.H{"name": "Alice", "email": "alice@example.com"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = perform(t, router, http.MethodPut, "/user/1", gin.H{"name": "Alice Smith", "email": "alice@example.com"})
	require.Equal(t, http.StatusOK, rec.Code)
	var user User
	decode(t, rec, &user)
	assert.Equal(t, "Alice Smith", user.Name)

	rec = perform(t, router, http.MethodDelete, "/user/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	decode(t, rec, &body)
	assert.Equal(t, "successfully deleted user: 1, Alice Smith", body["message"])

	rec = perform(t, router, http.MethodGet, "/user/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCategoryRoutes(t *testing.T) {
	router := setupRouter()

	rec := perform(t, router, http.MethodPost, "/category", gin.H{"category_name": "Electronics"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var category Category
	decode(t, rec, &category)
	assert.Equal(t, int64(1), category.Id)
	assert.Equal(t, "Electronics", category.CategoryName)

	rec = perform(t, router, http.MethodGet, "/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var categories []Category
	decode(t, rec, &categories)
	assert.Len(t, categories, 1)

	rec = perform(t, router, http.MethodDelete, "/category/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	decode(t, rec, &body)
	assert.Equal(t, "successfully deleted category: 1, Electronics", body["message"])
}

func TestCreateProduct_Validation(t *testing.T) {
	router := setupRouter()

	rec := perform(t, router, http.MethodPost, "/category", gin.H{"category_name": "Electronics"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = perform(t, router, http.MethodPost, "/product", gin.H{"product_name": "Keyboard", "price": -1, "category_id": 1})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var fields map[string][]string
	decode(t, rec, &fields)
	assert.Equal(t, []string{"Price must be positive!"}, fields["price"])

	rec = perform(t, router, http.MethodPost, "/product", gin.H{"product_name": "Keyboard", "price": 49.99, "category_id": 404})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	decode(t, rec, &fields)
	assert.Equal(t, []string{"Category not found"}, fields["category_id"])

	rec = perform(t, router, http.MethodPost, "/product", gin.H{"product_name": "Keyboard", "price": 49.99, "category_id": 1})
	require.Equal(t, http.StatusCreated, rec.Code)
	var product Product
	decode(t, rec, &product)
	assert.Equal(t, "Keyboard", product.ProductName)
	assert.Equal(t, 49.99, product.Price)
	assert.Equal(t, int64(1), product.CategoryId)
}

func TestDeleteProduct_Message(t *testing.T) {
	router := setupRouter()

	perform(t, router, http.MethodPost, "/category", gin.H{"category_name": "Electronics"})
	rec := perform(t, router, http.MethodPost, "/product", gin.H{"product_name": "Keyboard", "price": 49.99, "category_id": 1})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = perform(t, router, http.MethodDelete, "/product/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	decode(t, rec, &body)
	assert.Equal(t, "successfully deleted product: 1, Keyboard", body["message"])
}

func TestOrderRoutes(t *testing.T) {
	router := setupRouter()

	perform(t, router, http.MethodPost, "/users", gin.H{"name": "Alice", "email": "alice@example.com"})
	perform(t, router, http.MethodPost, "/category", gin.H{"category_name": "Electronics"})
	perform(t, router, http.MethodPost, "/product", gin.H{"product_name": "Keyboard", "price": 49.99, "category_id": 1})

	rec := perform(t, router, http.MethodPost, "/orders", gin.H{"user_id": 1, "product_ids": []int64{1}})
	require.Equal(t, http.StatusCreated, rec.Code)
	var order Order
	decode(t, rec, &order)
	assert.Equal(t, int64(1), order.Id)
	assert.Equal(t, int64(1), order.UserId)
	assert.Equal(t, []int64{1}, order.Products)
	assert.False(t, order.OrderDate.IsZero())

	// The owning user now reports the order id.
	rec = perform(t, router, http.MethodGet, "/user/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var user User
	decode(t, rec, &user)
	assert.Equal(t, []int64{1}, user.Orders)

	rec = perform(t, router, http.MethodDelete, "/order/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	decode(t, rec, &body)
	assert.Equal(t, "Successfully deleted order: 1", body["message"])
}

func TestCreateOrder_EmptyProducts(t *testing.T) {
	router := setupRouter()
	perform(t, router, http.MethodPost, "/users", gin.H{"name": "Alice", "email": "alice@example.com"})

	rec := perform(t, router, http.MethodPost, "/orders", gin.H{"user_id": 1, "product_ids": []int64{}})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var fields map[string][]string
	decode(t, rec, &fields)
	assert.Equal(t, []string{"At least one product is required"}, fields["product_ids"])
}

func TestCreateOrder_UnknownProduct(t *testing.T) {
	router := setupRouter()
	perform(t, router, http.MethodPost, "/users", gin.H{"name": "Alice", "email": "alice@example.com"})

	rec := perform(t, router, http.MethodPost, "/orders", gin.H{"user_id": 1, "product_ids": []int64{404}})
	require.Equal(t, http.StatusNotFound, rec.Code)
	var body map[string]string
	decode(t, rec, &body)
	assert.Equal(t, "One or more products do not exist", body["error"])
}

func TestUpdateOrder_ReassignsOwner(t *testing.T) {
	router := setupRouter()

	perform(t, router, http.MethodPost, "/users", gin.H{"name": "Alice", "email": "alice@example.com"})
	perform(t, router, http.MethodPost, "/users", gin.H{"name": "Bob", "email": "bob@example.com"})
	perform(t, router, http.MethodPost, "/category", gin.H{"category_name": "Electronics"})
	perform(t, router, http.MethodPost, "/product", gin.H{"product_name": "Keyboard", "price": 49.99, "category_id": 1})
	rec := perform(t, router, http.MethodPost, "/orders", gin.H{"user_id": 1, "product_ids": []int64{1}})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = perform(t, router, http.MethodPut, "/order/1", gin.H{"user_id": 2})
	require.Equal(t, http.StatusOK, rec.Code)
	var order Order
	decode(t, rec, &order)
	assert.Equal(t, int64(2), order.UserId)
	assert.Equal(t, []int64{1}, order.Products)
}
