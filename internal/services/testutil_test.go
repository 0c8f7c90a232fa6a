package services

import (
	"path/filepath"
	"testing"

	"github.com/revolutionrp/community/internal/models"
	"github.com/revolutionrp/community/internal/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	utils.SetJWTSecret("test-secret-for-service-testing")
}

// newTestDB opens a throwaway sqlite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.ApplicationForm{},
		&models.ApplicationSubmission{},
		&models.Changelog{},
		&models.SystemLog{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username, password, role string, allowedForms ...string) *models.User {
	t.Helper()

	hash, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		ID:           utils.NewID("user-"),
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		AllowedForms: models.StringList(allowedForms),
		CreatedBy:    "test",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

func createTestForm(t *testing.T, db *gorm.DB, title string, active bool) *models.ApplicationForm {
	t.Helper()

	form := &models.ApplicationForm{
		ID:          utils.NewID("form-"),
		Title:       title,
		Description: "test form",
		Position:    "Tester",
		Fields: models.FormFieldList{
			{ID: "f1", Label: "Name", FieldType: "text", Required: true},
		},
		IsActive:  active,
		CreatedBy: "admin",
	}
	if err := db.Create(form).Error; err != nil {
		t.Fatalf("failed to create test form: %v", err)
	}
	return form
}
