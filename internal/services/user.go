package services

import (
	"errors"

	"github.com/revolutionrp/community/internal/models"
	"github.com/revolutionrp/community/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound     = errors.New("User not found")
	ErrUsernameTaken    = errors.New("Username already exists")
	ErrSelfModification = errors.New("Cannot modify your own account")
	ErrSelfDeletion     = errors.New("Cannot delete your own account")
	ErrProtectedAccount = errors.New("Cannot delete default admin account")
	ErrInvalidRole      = errors.New("Invalid role, must be 'admin' or 'staff'")
	ErrNoFieldsToUpdate = errors.New("No fields to update")
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

type CreateUserRequest struct {
	Username     string            `json:"username" binding:"required"`
	Password     string            `json:"password" binding:"required"`
	Role         string            `json:"role" binding:"required,oneof=admin staff"`
	AllowedForms models.StringList `json:"allowed_forms"`
}

// UpdateUserRequest carries a partial update: only non-nil fields change.
type UpdateUserRequest struct {
	Username     *string            `json:"username"`
	Password     *string            `json:"password"`
	Role         *string            `json:"role"`
	AllowedForms *models.StringList `json:"allowed_forms"`
}

// List returns all accounts, newest first, as sanitized views.
func (s *UserService) List() ([]*UserView, error) {
	var users []models.User
	if err := s.db.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}

	views := make([]*UserView, 0, len(users))
	for i := range users {
		views = append(views, NewUserView(&users[i]))
	}
	return views, nil
}

// Create adds a new account. Username uniqueness is checked up front for a
// friendly error; the unique index on users.username is the real guard
// against concurrent duplicates.
func (s *UserService) Create(req *CreateUserRequest, createdBy string) (*UserView, error) {
	var count int64
	if err := s.db.Model(&models.User{}).Where("username = ?", req.Username).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	allowedForms := req.AllowedForms
	if allowedForms == nil {
		allowedForms = models.StringList{}
	}

	user := models.User{
		ID:           utils.NewID("user-"),
		Username:     req.Username,
		PasswordHash: hash,
		Role:         req.Role,
		AllowedForms: allowedForms,
		CreatedBy:    createdBy,
	}

	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	return NewUserView(&user), nil
}

// Update applies a partial update to another account. Acting on one's own
// account is rejected regardless of role.
func (s *UserService) Update(actorID, targetID string, req *UpdateUserRequest) (*UserView, error) {
	if targetID == actorID {
		return nil, ErrSelfModification
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	updates := make(map[string]interface{})

	if req.Username != nil {
		updates["username"] = *req.Username
	}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		updates["password_hash"] = hash
	}
	if req.Role != nil {
		if *req.Role != models.RoleAdmin && *req.Role != models.RoleStaff {
			return nil, ErrInvalidRole
		}
		updates["role"] = *req.Role
	}
	if req.AllowedForms != nil {
		updates["allowed_forms"] = *req.AllowedForms
	}

	if len(updates) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	if err := s.db.Model(&user).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	if err := s.db.First(&user, "id = ?", targetID).Error; err != nil {
		return nil, err
	}
	return NewUserView(&user), nil
}

// Delete removes an account. Self-deletion and the protected admin account
// are rejected with a client error, never performed.
func (s *UserService) Delete(actorID, targetID string) error {
	if targetID == actorID {
		return ErrSelfDeletion
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if user.Username == models.DefaultAdminUsername {
		return ErrProtectedAccount
	}

	return s.db.Delete(&user).Error
}
