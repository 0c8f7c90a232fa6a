package services

import (
	"errors"

	"github.com/revolutionrp/community/internal/models"
	"github.com/revolutionrp/community/internal/utils"
	"gorm.io/gorm"
)

var ErrChangelogNotFound = errors.New("Changelog not found")

// publicChangelogLimit caps the public listing to the most recent posts.
const publicChangelogLimit = 10

type ChangelogService struct {
	db *gorm.DB
}

func NewChangelogService(db *gorm.DB) *ChangelogService {
	return &ChangelogService{db: db}
}

type CreateChangelogRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
	Version string `json:"version"`
}

type UpdateChangelogRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Version *string `json:"version"`
}

// ListPublic returns the most recent posts for the public page.
func (s *ChangelogService) ListPublic() ([]models.Changelog, error) {
	logs := make([]models.Changelog, 0)
	if err := s.db.Order("created_at DESC").Limit(publicChangelogLimit).Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// ListAll returns every post for the admin view.
func (s *ChangelogService) ListAll() ([]models.Changelog, error) {
	logs := make([]models.Changelog, 0)
	if err := s.db.Order("created_at DESC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (s *ChangelogService) Create(req *CreateChangelogRequest, createdBy string) (*models.Changelog, error) {
	log := models.Changelog{
		ID:        utils.NewID("changelog-"),
		Title:     req.Title,
		Content:   req.Content,
		Version:   req.Version,
		CreatedBy: createdBy,
	}

	if err := s.db.Create(&log).Error; err != nil {
		return nil, err
	}

	return &log, nil
}

// Update applies a partial update: omitted fields stay untouched.
func (s *ChangelogService) Update(id string, req *UpdateChangelogRequest) (*models.Changelog, error) {
	var log models.Changelog
	if err := s.db.First(&log, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChangelogNotFound
		}
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.Version != nil {
		updates["version"] = *req.Version
	}

	if len(updates) > 0 {
		if err := s.db.Model(&log).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	if err := s.db.First(&log, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

func (s *ChangelogService) Delete(id string) error {
	result := s.db.Delete(&models.Changelog{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrChangelogNotFound
	}
	return nil
}
