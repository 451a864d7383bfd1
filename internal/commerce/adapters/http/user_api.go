package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Betojr04/E-commerceAPI/internal/commerce/ports"
	apierrors "github.com/Betojr04/E-commerceAPI/internal/shared/errors"
)

// UserAPI implements the user routes.
type UserAPI struct {
	service ports.UserService
}

func NewUserAPI(service ports.UserService) UserAPI {
	return UserAPI{service: service}
}

type userPayload struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

// Post /users
func (api *UserAPI) CreateUser(c *gin.Context) {
	var payload userPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		apierrors.RespondBindError(c, err)
		return
	}
	user, err := api.service.Create(c.Request.Context(), payload.Name, payload.Email)
	if err != nil {
		apierrors.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fromDomainUser(user))
}

// Get /users
func (api *UserAPI) GetUsers(c *gin.Context) {
	users, err := api.service.List(c.Request.Context())
	if err != nil {
		apierrors.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainUsers(users))
}

// Get /user/:id
func (api *UserAPI) GetUser(c *gin.Context) {
	id, ok := pathID(c, "User")
	if !ok {
		return
	}
	user, err := api.service.Get(c.Request.Context(), id)
	if err != nil {
		apierrors.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainUser(user))
}

// Put /user/:id
func (api *UserAPI) UpdateUser(c *gin.Context) {
	id, ok := pathID(c, "User")
	if !ok {
		return
	}
	var payload userPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		apierrors.RespondBindError(c, err)
		return
	}
	user, err := api.service.Update(c.Request.Context(), id, payload.Name, payload.Email)
	if err != nil {
		apierrors.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainUser(user))
}

// Delete /user/:id
func (api *UserAPI) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "User")
	if !ok {
		return
	}
	user, err := api.service.Delete(c.Request.Context(), id)
	if err != nil {
		apierrors.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("successfully deleted user: %d, %s", user.ID, user.Name)})
}
