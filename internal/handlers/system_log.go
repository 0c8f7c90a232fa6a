package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/revolutionrp/community/internal/services"
	"github.com/revolutionrp/community/pkg/response"
)

type SystemLogHandler struct {
	logService *services.SystemLogService
}

func NewSystemLogHandler(logService *services.SystemLogService) *SystemLogHandler {
	return &SystemLogHandler{logService: logService}
}

func (h *SystemLogHandler) List(c *gin.Context) {
	var req services.SystemLogListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.logService.List(&req)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, resp)
}

// Cleanup runs an on-demand retention sweep with the given cutoff.
func (h *SystemLogHandler) Cleanup(c *gin.Context) {
	var req struct {
		Days int `json:"days" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Days must be a positive number")
		return
	}

	deleted, err := h.logService.CleanupOldLogs(req.Days)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Message(c, fmt.Sprintf("Deleted %d log entries older than %d days", deleted, req.Days))
}
