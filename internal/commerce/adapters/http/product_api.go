package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Betojr04/E-commerceAPI/internal/commerce/ports"
	apierrors "github.com/Betojr04/E-commerceAPI/internal/shared/errors"
)

// ProductAPI implements the product routes.
type ProductAPI struct {
	service ports.ProductService
}

func NewProductAPI(service ports.ProductService) ProductAPI {
	return ProductAPI{service: service}
}

// Price binds through a pointer so a legitimate zero price still satisfies
// required; range checks belong to the domain.
type productPayload struct {
	ProductName string   `json:"product_name" binding:"required"`
	Price       *float64 `json:"price" binding:"required"`
	CategoryId  int64    `json:"category_id" binding:"required"`
}

// Post /product
func (api *ProductAPI) CreateProduct(c *gin.Context) {
	var payload productPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		apierrors.RespondBindError(c, err)
		return
	}
	product, err := api.service.Create(c.Request.Context(), payload.ProductName, *payload.Price, payload.CategoryId)
	if err != nil {
		apierrors.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fromDomainProduct(product))
}

// Get /products
func (api *ProductAPI) GetProducts(c *gin.Context) {
	products, err := api.service.List(c.Request.Context())
	if err != nil {
		apierrors.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainProducts(products))
}

// Get /product/:id
func (api *ProductAPI) GetProduct(c *gin.Context) {
	id, ok := pathID(c, "Product")
	if !ok {
		return
	}
	product, err := api.service.Get(c.Request.Context(), id)
	if err != nil {
		apierrors.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainProduct(product))
}

// Put /product/:id
func (api *ProductAPI) UpdateProduct(c *gin.Context) {
	id, ok := pathID(c, "Product")
	if !ok {
		return
	}
	var payload productPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		apierrors.RespondBindError(c, err)
		return
	}
	product, err := api.service.Update(c.Request.Context(), id, payload.ProductName, *payload.Price, payload.CategoryId)
	if err != nil {
		apierrors.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainProduct(product))
}

// Delete /product/:id
func (api *ProductAPI) DeleteProduct(c *gin.Context) {
	id, ok := pathID(c, "Product")
	if !ok {
		return
	}
	product, err := api.service.Delete(c.Request.Context(), id)
	if err != nil {
		apierrors.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("successfully deleted product: %d, %s", product.ID, product.Name)})
}
