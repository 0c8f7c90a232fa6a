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

type SubmissionHandler struct {
	submissionService *services.SubmissionService
	authService       *services.AuthService
}

func NewSubmissionHandler(submissionService *services.SubmissionService, authService *services.AuthService) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: submissionService,
		authService:       authService,
	}
}

// actingUser resolves the token's account for the policy checks. Deleted
// accounts invalidate an otherwise valid token.
func (h *SubmissionHandler) actingUser(c *gin.Context) (*models.User, bool) {
	user, err := h.authService.GetUserByID(middleware.GetUserID(c))
	if err != nil {
		response.Unauthorized(c, "Unauthorized")
		return nil, false
	}
	return user, true
}

// Submit receives a public application. The applicant needs no account.
func (h *SubmissionHandler) Submit(c *gin.Context) {
	var req services.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	sub, err := h.submissionService.Submit(&req)
	if err != nil {
		if errors.Is(err, services.ErrFormNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{
		"message":       "Application submitted successfully",
		"submission_id": sub.ID,
	})
}

// List returns the submissions visible to the acting user. Admins see
// everything; staff only their granted forms.
func (h *SubmissionHandler) List(c *gin.Context) {
	user, ok := h.actingUser(c)
	if !ok {
		return
	}

	subs, err := h.submissionService.ListFor(user)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, subs)
}

func (h *SubmissionHandler) Get(c *gin.Context) {
	user, ok := h.actingUser(c)
	if !ok {
		return
	}

	sub, err := h.submissionService.GetFor(user, c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.OK(c, sub)
}

func (h *SubmissionHandler) UpdateStatus(c *gin.Context) {
	user, ok := h.actingUser(c)
	if !ok {
		return
	}

	var req services.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Status must be one of: pending, approved, rejected")
		return
	}

	sub, err := h.submissionService.UpdateStatusFor(user, c.Param("id"), req.Status)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.OK(c, sub)
}

func (h *SubmissionHandler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrSubmissionNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, services.ErrFormAccessDenied):
		response.Forbidden(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}
