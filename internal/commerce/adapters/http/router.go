// Package http serves the commerce API over gin.
package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Betojr04/E-commerceAPI/internal/commerce/ports"
	apierrors "github.com/Betojr04/E-commerceAPI/internal/shared/errors"
)

// Handlers bundles the per-entity API implementations.
type Handlers struct {
	Users      UserAPI
	Categories CategoryAPI
	Products   ProductAPI
	Orders     OrderAPI
}

// NewRouter builds the gin engine with every route wired. Middleware must be
// passed here so it is installed before the routes are registered.
func NewRouter(h Handlers, middleware ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware...)

	router.POST("/users", h.Users.CreateUser)
	router.GET("/users", h.Users.GetUsers)
	router.GET("/user/:id", h.Users.GetUser)
	router.PUT("/user/:id", h.Users.UpdateUser)
	router.DELETE("/user/:id", h.Users.DeleteUser)

	router.POST("/category", h.Categories.CreateCategory)
	router.GET("/categories", h.Categories.GetCategories)
	router.GET("/category/:id", h.Categories.GetCategory)
	router.PUT("/category/:id", h.Categories.UpdateCategory)
	router.DELETE("/category/:id", h.Categories.DeleteCategory)

	router.POST("/product", h.Products.CreateProduct)
	router.GET("/products", h.Products.GetProducts)
	router.GET("/product/:id", h.Products.GetProduct)
	router.PUT("/product/:id", h.Products.UpdateProduct)
	router.DELETE("/product/:id", h.Products.DeleteProduct)

	router.POST("/orders", h.Orders.CreateOrder)
	router.GET("/orders", h.Orders.GetOrders)
	router.GET("/order/:id", h.Orders.GetOrder)
	router.PUT("/order/:id", h.Orders.UpdateOrder)
	router.DELETE("/order/:id", h.Orders.DeleteOrder)

	return router
}

// pathID parses the :id path parameter. A non-numeric id can never resolve,
// so it reports the same not-found as a missing row.
func pathID(c *gin.Context, entity string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		apierrors.RespondError(c, ports.NotFound(entity))
		return 0, false
	}
	return id, true
}
