package models

import (
	"time"
)

// Role values. Exactly one protected account named admin always exists.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// DefaultAdminUsername is the protected account that can never be deleted.
const DefaultAdminUsername = "admin"

// User is an admin-panel account. Staff accounts are scoped to a subset of
// application forms via AllowedForms; admins see everything.
type User struct {
	ID           string     `gorm:"primaryKey;size:64" json:"id"`
	Username     string     `gorm:"uniqueIndex;size:100;not null" json:"username"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	Role         string     `gorm:"size:20;default:staff" json:"role"` // admin, staff
	AllowedForms StringList `gorm:"type:text" json:"allowed_forms"`
	CreatedAt    time.Time  `json:"created_at"`
	CreatedBy    string     `gorm:"size:100" json:"created_by"` // username or "system"
}

// IsAdmin reports whether the user holds the unrestricted role.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// CanAccessForm is the single form-scope policy: admins may access every
// form, staff only forms in their AllowedForms grant.
func (u *User) CanAccessForm(formID string) bool {
	if u.Role == RoleAdmin {
		return true
	}
	return u.Role == RoleStaff && u.AllowedForms.Contains(formID)
}

// ApplicationForm is a published set of questions applicants answer.
type ApplicationForm struct {
	ID          string        `gorm:"primaryKey;size:64" json:"id"`
	Title       string        `gorm:"size:200;not null" json:"title"`
	Description string        `gorm:"type:text" json:"description"`
	Position    string        `gorm:"size:200" json:"position"`
	Fields      FormFieldList `gorm:"type:text" json:"fields"`
	WebhookURL  string        `gorm:"size:500" json:"webhook_url"`
	// No column default: a plain bool's false is the zero value, so a
	// default tag would silently flip inactive inserts back to active.
	// Creators set IsActive explicitly.
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	CreatedBy string    `gorm:"size:100" json:"created_by"`
}

// Submission status values. Transitions are unrestricted; there is no
// terminal state.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// ApplicationSubmission is one applicant's completed answers to a form.
// FormID is a weak reference: the form may be deactivated or deleted later
// and the submission persists.
type ApplicationSubmission struct {
	ID            string      `gorm:"primaryKey;size:64" json:"id"`
	FormID        string      `gorm:"index;size:64;not null" json:"form_id"`
	ApplicantName string      `gorm:"size:200;not null" json:"applicant_name"`
	Responses     ResponseMap `gorm:"type:text" json:"responses"`
	Status        string      `gorm:"size:20;default:pending" json:"status"`
	SubmittedAt   time.Time   `gorm:"index" json:"submitted_at"`
}

// Changelog is a published server update post.
type Changelog struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Version   string    `gorm:"size:50" json:"version"`
	CreatedAt time.Time `json:"created_at"`
	CreatedBy string    `gorm:"size:100" json:"created_by"`
}

// SystemLog records admin panel operations for auditing.
type SystemLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Level     string    `gorm:"size:20;index" json:"level"` // info, warning, error
	Module    string    `gorm:"size:100;index" json:"module"`
	Action    string    `gorm:"size:200;index" json:"action"`
	Message   string    `gorm:"type:text" json:"message"`
	UserID    string    `gorm:"size:64;index" json:"user_id"`
	IP        string    `gorm:"size:50" json:"ip"`
	UserAgent string    `gorm:"size:500" json:"user_agent"`
	Extra     string    `gorm:"type:text" json:"extra"` // JSON extra data
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// TableName overrides
func (User) TableName() string                  { return "users" }
func (ApplicationForm) TableName() string       { return "application_forms" }
func (ApplicationSubmission) TableName() string { return "application_submissions" }
func (Changelog) TableName() string             { return "changelogs" }
func (SystemLog) TableName() string             { return "system_logs" }
