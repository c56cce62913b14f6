package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a staff account. Every endpoint is gated by one of the six
// capability flags; no flag implies another.
type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email    string    `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password string    `gorm:"not null" json:"-"`

	CanManageCustomers          bool `gorm:"not null;default:false" json:"can_manage_customers"`
	CanManageFinancial          bool `gorm:"not null;default:false" json:"can_manage_financial"`
	CanManageCollaborationCodes bool `gorm:"not null;default:false" json:"can_manage_collaboration_codes"`
	CanViewCollaborationStats   bool `gorm:"not null;default:false" json:"can_view_collaboration_stats"`
	CanManageAccess             bool `gorm:"not null;default:false" json:"can_manage_access"`
	CanDeleteUsers              bool `gorm:"not null;default:false" json:"can_delete_users"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
