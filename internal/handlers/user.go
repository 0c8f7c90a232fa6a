package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/revolutionrp/community/internal/middleware"
	"github.com/revolutionrp/community/internal/services"
	"github.com/revolutionrp/community/pkg/response"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, users)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req services.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.userService.Create(&req, middleware.GetUsername(c))
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	var req services.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.userService.Update(middleware.GetUserID(c), c.Param("id"), &req)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.OK(c, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.userService.Delete(middleware.GetUserID(c), c.Param("id")); err != nil {
		h.renderError(c, err)
		return
	}
	response.Message(c, "User deleted")
}

func (h *UserHandler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, services.ErrSelfModification),
		errors.Is(err, services.ErrSelfDeletion),
		errors.Is(err, services.ErrProtectedAccount),
		errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrNoFieldsToUpdate):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}
