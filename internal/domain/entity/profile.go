package entity

import (
	"github.com/google/uuid"
)

// Profile carries the role attached to a user. Every user has exactly one
// profile, created in the same transaction as the user row.
type Profile struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Role   string    `gorm:"type:varchar(10);not null;default:'doctor'" json:"role"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Profile) TableName() string {
	return "profiles"
}

// Role constants
const (
	RoleDoctor = "doctor"
	RoleAdmin  = "admin"
)
