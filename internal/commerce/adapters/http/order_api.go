package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Betojr04/E-commerceAPI/internal/commerce/ports"
	apierrors "github.com/Betojr04/E-commerceAPI/internal/shared/errors"
)

// OrderAPI implements the order routes.
type OrderAPI struct {
	service ports.OrderService
}

func NewOrderAPI(service ports.OrderService) OrderAPI {
	return OrderAPI{service: service}
}

// product_ids is validated by the service so an empty list reports the
// canonical message rather than a generic binding error.
type orderCreatePayload struct {
	UserId     int64   `json:"user_id" binding:"required"`
	ProductIds []int64 `json:"product_ids"`
}

type orderUpdatePayload struct {
	UserId int64 `json:"user_id" binding:"required"`
}

// Post /orders
func (api *OrderAPI) CreateOrder(c *gin.Context) {
	var payload orderCreatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		apierrors.RespondBindError(c, err)
		return
	}
	order, err := api.service.Create(c.Request.Context(), payload.UserId, payload.ProductIds)
	if err != nil {
		apierrors.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fromDomainOrder(order))
}

// Get /orders
func (api *OrderAPI) GetOrders(c *gin.Context) {
	orders, err := api.service.List(c.Request.Context())
	if err != nil {
		apierrors.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainOrders(orders))
}

// Get /order/:id
func (api *OrderAPI) GetOrder(c *gin.Context) {
	id, ok := pathID(c, "Order")
	if !ok {
		return
	}
	order, err := api.service.Get(c.Request.Context(), id)
	if err != nil {
		apierrors.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainOrder(order))
}

// Put /order/:id
// Reassigns ownership only; the product set is changed by delete-and-recreate.
func (api *OrderAPI) UpdateOrder(c *gin.Context) {
	id, ok := pathID(c, "Order")
	if !ok {
		return
	}
	var payload orderUpdatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		apierrors.RespondBindError(c, err)
		return
	}
	order, err := api.service.Update(c.Request.Context(), id, payload.UserId)
	if err != nil {
		apierrors.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainOrder(order))
}

// Delete /order/:id
func (api *OrderAPI) DeleteOrder(c *gin.Context) {
	id, ok := pathID(c, "Order")
	if !ok {
		return
	}
	if err := api.service.Delete(c.Request.Context(), id); err != nil {
		apierrors.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Successfully deleted order: %d", id)})
}
