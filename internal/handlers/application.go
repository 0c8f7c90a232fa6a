package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/revolutionrp/community/internal/middleware"
	"github.com/revolutionrp/community/internal/services"
	"github.com/revolutionrp/community/pkg/response"
)

type ApplicationHandler struct {
	formService *services.FormService
}

func NewApplicationHandler(formService *services.FormService) *ApplicationHandler {
	return &ApplicationHandler{formService: formService}
}

// ListActive returns the open application forms for the public site.
func (h *ApplicationHandler) ListActive(c *gin.Context) {
	forms, err := h.formService.ListActive()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, forms)
}

// GetActive returns one open form. Inactive forms are indistinguishable
// from unknown ids on this endpoint.
func (h *ApplicationHandler) GetActive(c *gin.Context) {
	form, err := h.formService.GetActive(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrFormNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, form)
}

// ListAll returns every form, including inactive ones, for the admin panel.
func (h *ApplicationHandler) ListAll(c *gin.Context) {
	forms, err := h.formService.ListAll()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, forms)
}

func (h *ApplicationHandler) Get(c *gin.Context) {
	form, err := h.formService.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrFormNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, form)
}

func (h *ApplicationHandler) Create(c *gin.Context) {
	var req services.CreateFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	form, err := h.formService.Create(&req, middleware.GetUsername(c))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.OK(c, form)
}

func (h *ApplicationHandler) Update(c *gin.Context) {
	var req services.UpdateFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	form, err := h.formService.Update(c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, services.ErrFormNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.BadRequest(c, err.Error())
		return
	}
	response.OK(c, form)
}

func (h *ApplicationHandler) Delete(c *gin.Context) {
	if err := h.formService.Delete(c.Param("id")); err != nil {
		if errors.Is(err, services.ErrFormNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Message(c, "Application form deleted")
}
