package services

import (
	"errors"
	"time"

	"github.com/revolutionrp/community/internal/models"
	"github.com/revolutionrp/community/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrSubmissionNotFound = errors.New("Submission not found")
	// ErrFormAccessDenied is returned when a staff user touches a
	// submission whose form is outside their grant list.
	ErrFormAccessDenied = errors.New("Access denied")
)

type SubmissionService struct {
	db       *gorm.DB
	notifier Notifier
}

// Notifier delivers best-effort submission notifications. Delivery failure
// must never fail the submit operation.
type Notifier interface {
	NotifySubmission(form *models.ApplicationForm, sub *models.ApplicationSubmission)
}

func NewSubmissionService(db *gorm.DB, notifier Notifier) *SubmissionService {
	return &SubmissionService{db: db, notifier: notifier}
}

type SubmitRequest struct {
	FormID        string             `json:"form_id" binding:"required"`
	ApplicantName string             `json:"applicant_name" binding:"required"`
	Responses     models.ResponseMap `json:"responses" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending approved rejected"`
}

// Submit validates that the target form exists and is active, then stores
// the submission and fires the form's webhook notification if configured.
func (s *SubmissionService) Submit(req *SubmitRequest) (*models.ApplicationSubmission, error) {
	var form models.ApplicationForm
	if err := s.db.Where("id = ? AND is_active = ?", req.FormID, true).First(&form).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}

	sub := models.ApplicationSubmission{
		ID:            utils.NewID("sub-"),
		FormID:        req.FormID,
		ApplicantName: req.ApplicantName,
		Responses:     req.Responses,
		Status:        models.StatusPending,
		SubmittedAt:   time.Now(),
	}

	if err := s.db.Create(&sub).Error; err != nil {
		return nil, err
	}

	if s.notifier != nil && form.WebhookURL != "" {
		s.notifier.NotifySubmission(&form, &sub)
	}

	return &sub, nil
}

// ListFor returns the submissions the acting user may see, newest first.
// Admins see everything; staff only submissions to their granted forms.
// Staff with an empty grant list get an empty list, not an error.
func (s *SubmissionService) ListFor(user *models.User) ([]models.ApplicationSubmission, error) {
	subs := make([]models.ApplicationSubmission, 0)

	query := s.db.Order("submitted_at DESC")
	if !user.IsAdmin() {
		if len(user.AllowedForms) == 0 {
			return subs, nil
		}
		query = query.Where("form_id IN ?", []string(user.AllowedForms))
	}

	if err := query.Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

// GetFor loads one submission, enforcing the form-scope policy for the
// acting user. Unknown ids report not found before any access check.
func (s *SubmissionService) GetFor(user *models.User, id string) (*models.ApplicationSubmission, error) {
	var sub models.ApplicationSubmission
	if err := s.db.First(&sub, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}

	if !user.CanAccessForm(sub.FormID) {
		return nil, ErrFormAccessDenied
	}

	return &sub, nil
}

// UpdateStatusFor sets a submission's review status. Transitions are
// unrestricted between pending, approved and rejected.
func (s *SubmissionService) UpdateStatusFor(user *models.User, id, status string) (*models.ApplicationSubmission, error) {
	sub, err := s.GetFor(user, id)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(sub).Update("status", status).Error; err != nil {
		return nil, err
	}

	sub.Status = status
	return sub, nil
}
