package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/revolutionrp/community/internal/middleware"
	"github.com/revolutionrp/community/internal/services"
	"github.com/revolutionrp/community/pkg/response"
)

type ChangelogHandler struct {
	changelogService *services.ChangelogService
}

func NewChangelogHandler(changelogService *services.ChangelogService) *ChangelogHandler {
	return &ChangelogHandler{changelogService: changelogService}
}

// ListPublic returns the latest posts for the public changelog page.
func (h *ChangelogHandler) ListPublic(c *gin.Context) {
	logs, err := h.changelogService.ListPublic()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, logs)
}

func (h *ChangelogHandler) ListAll(c *gin.Context) {
	logs, err := h.changelogService.ListAll()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, logs)
}

func (h *ChangelogHandler) Create(c *gin.Context) {
	var req services.CreateChangelogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	log, err := h.changelogService.Create(&req, middleware.GetUsername(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, log)
}

func (h *ChangelogHandler) Update(c *gin.Context) {
	var req services.UpdateChangelogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	log, err := h.changelogService.Update(c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, services.ErrChangelogNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, log)
}

func (h *ChangelogHandler) Delete(c *gin.Context) {
	if err := h.changelogService.Delete(c.Param("id")); err != nil {
		if errors.Is(err, services.ErrChangelogNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Message(c, "Changelog deleted")
}
