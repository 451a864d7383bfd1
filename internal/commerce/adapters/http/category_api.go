package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Betojr04/E-commerceAPI/internal/commerce/ports"
	apierrors "github.com/Betojr04/E-commerceAPI/internal/shared/errors"
)

// CategoryAPI implements the category routes.
type CategoryAPI struct {
	service ports.CategoryService
}

func NewCategoryAPI(service ports.CategoryService) CategoryAPI {
	return CategoryAPI{service: service}
}

type categoryPayload struct {
	CategoryName string `json:"category_name" binding:"required"`
}

// Post /category
func (api *CategoryAPI) CreateCategory(c *gin.Context) {
	var payload categoryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		apierrors.RespondBindError(c, err)
		return
	}
	category, err := api.service.Create(c.Request.Context(), payload.CategoryName)
	if err != nil {
		apierrors.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fromDomainCategory(category))
}

// Get /categories
func (api *CategoryAPI) GetCategories(c *gin.Context) {
	categories, err := api.service.List(c.Request.Context())
	if err != nil {
		apierrors.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainCategories(categories))
}

// Get /category/:id
func (api *CategoryAPI) GetCategory(c *gin.Context) {
	id, ok := pathID(c, "Category")
	if !ok {
		return
	}
	category, err := api.service.Get(c.Request.Context(), id)
	if err != nil {
		apierrors.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainCategory(category))
}

// Put /category/:id
func (api *CategoryAPI) UpdateCategory(c *gin.Context) {
	id, ok := pathID(c, "Category")
	if !ok {
		return
	}
	var payload categoryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		apierrors.RespondBindError(c, err)
		return
	}
	category, err := api.service.Update(c.Request.Context(), id, payload.CategoryName)
	if err != nil {
		apierrors.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainCategory(category))
}

// Delete /category/:id
// Destructive: removes every product in the category as well.
func (api *CategoryAPI) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c, "Category")
	if !ok {
		return
	}
	category, err := api.service.Delete(c.Request.Context(), id)
	if err != nil {
		apierrors.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("successfully deleted category: %d, %s", category.ID, category.Name)})
}
