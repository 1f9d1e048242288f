package entity

import (
	"time"

	"github.com/google/uuid"
)

// Token is the opaque bearer credential, bound one-to-one to a user.
// It is created lazily on first signup or login and reused afterwards;
// the unique index on user_id guarantees at most one row per user.
type Token struct {
	Key       string    `gorm:"type:char(40);primaryKey" json:"key"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Token) TableName() string {
	return "tokens"
}
