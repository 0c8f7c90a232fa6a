package services

import (
	"errors"

	"github.com/revolutionrp/community/internal/models"
	"github.com/revolutionrp/community/internal/utils"
	"gorm.io/gorm"
)

// ErrFormNotFound covers both unknown ids and forms hidden from the caller
// (inactive forms on the public surface).
var ErrFormNotFound = errors.New("Application form not found")

type FormService struct {
	db *gorm.DB
}

func NewFormService(db *gorm.DB) *FormService {
	return &FormService{db: db}
}

type CreateFormRequest struct {
	Title       string               `json:"title" binding:"required"`
	Description string               `json:"description" binding:"required"`
	Position    string               `json:"position" binding:"required"`
	Fields      models.FormFieldList `json:"fields" binding:"required"`
	WebhookURL  string               `json:"webhook_url"`
}

type UpdateFormRequest struct {
	Title       *string               `json:"title"`
	Description *string               `json:"description"`
	Position    *string               `json:"position"`
	Fields      *models.FormFieldList `json:"fields"`
	WebhookURL  *string               `json:"webhook_url"`
	IsActive    *bool                 `json:"is_active"`
}

// ListActive returns the forms visible on the public surface, newest first.
func (s *FormService) ListActive() ([]models.ApplicationForm, error) {
	forms := make([]models.ApplicationForm, 0)
	if err := s.db.Where("is_active = ?", true).Order("created_at DESC").Find(&forms).Error; err != nil {
		return nil, err
	}
	return forms, nil
}

// GetActive returns one active form; inactive and unknown ids both report
// not found so the public surface never reveals hidden forms.
func (s *FormService) GetActive(id string) (*models.ApplicationForm, error) {
	var form models.ApplicationForm
	if err := s.db.Where("id = ? AND is_active = ?", id, true).First(&form).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}
	return &form, nil
}

// ListAll returns every form, active or not, for the admin view.
func (s *FormService) ListAll() ([]models.ApplicationForm, error) {
	forms := make([]models.ApplicationForm, 0)
	if err := s.db.Order("created_at DESC").Find(&forms).Error; err != nil {
		return nil, err
	}
	return forms, nil
}

// GetByID returns any form regardless of active state.
func (s *FormService) GetByID(id string) (*models.ApplicationForm, error) {
	var form models.ApplicationForm
	if err := s.db.First(&form, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}
	return &form, nil
}

// Create publishes a new application form.
func (s *FormService) Create(req *CreateFormRequest, createdBy string) (*models.ApplicationForm, error) {
	if err := req.Fields.Validate(); err != nil {
		return nil, err
	}

	form := models.ApplicationForm{
		ID:          utils.NewID("form-"),
		Title:       req.Title,
		Description: req.Description,
		Position:    req.Position,
		Fields:      req.Fields,
		WebhookURL:  req.WebhookURL,
		IsActive:    true,
		CreatedBy:   createdBy,
	}

	if err := s.db.Create(&form).Error; err != nil {
		return nil, err
	}

	return &form, nil
}

// Update applies a partial update: only fields present in the request
// change, omitted fields stay untouched.
func (s *FormService) Update(id string, req *UpdateFormRequest) (*models.ApplicationForm, error) {
	var form models.ApplicationForm
	if err := s.db.First(&form, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}

	updates := make(map[string]interface{})

	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Position != nil {
		updates["position"] = *req.Position
	}
	if req.Fields != nil {
		if err := req.Fields.Validate(); err != nil {
			return nil, err
		}
		updates["fields"] = *req.Fields
	}
	if req.WebhookURL != nil {
		updates["webhook_url"] = *req.WebhookURL
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) > 0 {
		if err := s.db.Model(&form).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	if err := s.db.First(&form, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &form, nil
}

// Delete removes a form. Existing submissions referencing it persist.
func (s *FormService) Delete(id string) error {
	result := s.db.Delete(&models.ApplicationForm{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFormNotFound
	}
	return nil
}
