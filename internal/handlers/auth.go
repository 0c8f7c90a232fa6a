package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/revolutionrp/community/internal/middleware"
	"github.com/revolutionrp/community/internal/models"
	"github.com/revolutionrp/community/internal/services"
	"github.com/revolutionrp/community/pkg/response"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates admin/staff credentials and returns a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Username and password are required")
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   services.ErrInvalidCredentials.Error(),
			})
			return
		}
		response.InternalError(c, err)
		return
	}

	services.LogInfo("auth", "login", "User logged in: "+resp.User.Username,
		resp.User.ID, c.ClientIP(), c.Request.UserAgent(), nil)

	response.OK(c, resp)
}

// GetCurrentUser resolves the bearer token back to the stored account.
// A token whose account was deleted in the meantime is no longer valid.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	user, err := h.authService.GetUserByID(middleware.GetUserID(c))
	if err != nil {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	forms := user.AllowedForms
	if forms == nil {
		forms = models.StringList{}
	}

	response.OK(c, gin.H{
		"type":          user.Role,
		"id":            user.ID,
		"username":      user.Username,
		"role":          user.Role,
		"allowed_forms": forms,
		"is_admin":      user.IsAdmin(),
		"is_staff":      user.Role == models.RoleStaff,
	})
}
