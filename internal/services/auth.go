package services

import (
	"errors"

	"github.com/revolutionrp/community/internal/config"
	"github.com/revolutionrp/community/internal/models"
	"github.com/revolutionrp/community/internal/utils"
	"github.com/revolutionrp/community/pkg/logger"
	"gorm.io/gorm"
)

// ErrInvalidCredentials is the single login failure returned for both
// unknown usernames and wrong passwords, so responses cannot be used to
// enumerate accounts.
var ErrInvalidCredentials = errors.New("Invalid credentials")

type AuthService struct {
	db        *gorm.DB
	jwtConfig *config.JWTConfig
}

func NewAuthService(db *gorm.DB, jwtCfg *config.JWTConfig) *AuthService {
	return &AuthService{db: db, jwtConfig: jwtCfg}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserView is the sanitized user representation returned to clients.
// It never carries the password digest.
type UserView struct {
	ID           string            `json:"id"`
	Username     string            `json:"username"`
	Role         string            `json:"role"`
	AllowedForms models.StringList `json:"allowed_forms"`
}

type LoginResponse struct {
	Success bool      `json:"success"`
	Token   string    `json:"token"`
	User    *UserView `json:"user"`
}

// NewUserView builds the sanitized client view of a user.
func NewUserView(u *models.User) *UserView {
	forms := u.AllowedForms
	if forms == nil {
		forms = models.StringList{}
	}
	return &UserView{
		ID:           u.ID,
		Username:     u.Username,
		Role:         u.Role,
		AllowedForms: forms,
	}
}

// Login authenticates credentials and mints a signed bearer token.
func (s *AuthService) Login(req *LoginRequest) (*LoginResponse, error) {
	var user models.User
	if err := s.db.Where("username = ?", req.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPassword(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Username, user.Role, s.jwtConfig.ExpireHour)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Success: true,
		Token:   token,
		User:    NewUserView(&user),
	}, nil
}

// GetUserByID resolves a token's user id back to the stored account.
// Returns gorm.ErrRecordNotFound if the account no longer exists.
func (s *AuthService) GetUserByID(id string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateAdminIfNotExists seeds the protected default admin account.
func (s *AuthService) CreateAdminIfNotExists(cfg *config.AdminConfig) error {
	var count int64
	if err := s.db.Model(&models.User{}).
		Where("username = ?", models.DefaultAdminUsername).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword(cfg.Password)
	if err != nil {
		return err
	}

	admin := models.User{
		ID:           utils.NewID("user-"),
		Username:     models.DefaultAdminUsername,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		AllowedForms: models.StringList{},
		CreatedBy:    "system",
	}
	if err := s.db.Create(&admin).Error; err != nil {
		return err
	}

	logger.Info().Str("username", admin.Username).Msg("default admin account created")
	return nil
}
