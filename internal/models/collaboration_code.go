package models

import (
	"time"

	"github.com/google/uuid"
)

// CollaborationCode is a referral code customers may cite at enrollment.
// Deleting a code does not touch customers already referencing it.
//
// IsActive carries no column default: GORM skips zero-valued fields that
// have one on INSERT, which would silently turn an inactive create active.
// The service sets the field explicitly on every create.
type CollaborationCode struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Code     string    `gorm:"not null;size:100;uniqueIndex" json:"code"`
	IsActive bool      `gorm:"not null" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
