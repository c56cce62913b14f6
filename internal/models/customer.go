package models

import (
	"time"

	"github.com/google/uuid"
)

// Customer is an enrollment record. Customers are never hard-deleted: the
// soft-delete flag hides them from default listings and from all reporting.
//
// Prices is a text column that always holds a JSON array after create-time
// normalization. Code is a referral code held by value; the referenced
// CollaborationCode may be deactivated or deleted later and the reference is
// left dangling on purpose.
type Customer struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"not null;size:255" json:"name"`
	Surname      string    `gorm:"not null;size:255" json:"surname"`
	Phone        string    `gorm:"not null;size:50" json:"phone"`
	Email        string    `gorm:"not null;size:255;index" json:"email"`
	Grade        string    `gorm:"not null;size:50" json:"grade"`
	Camps        string    `gorm:"type:text;not null" json:"camps"`
	Prices       string    `gorm:"type:text;not null" json:"prices"`
	Code         *string   `gorm:"size:100;index" json:"code"`
	PreviousRank *string   `gorm:"size:100" json:"previous_rank"`
	City         string    `gorm:"not null;size:100" json:"city"`

	IsDeleted     bool    `gorm:"not null;default:false;index" json:"is_deleted"`
	DeletedReason *string `gorm:"size:255" json:"deleted_reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
