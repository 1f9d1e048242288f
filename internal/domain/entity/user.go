package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the authentication identity. Username and email are immutable
// after registration; only the password hash may change.
type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Username    string    `gorm:"type:varchar(150);uniqueIndex;not null" json:"username"`
	Email       string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password    string    `gorm:"type:text;not null" json:"-"`
	IsSuperuser bool      `gorm:"not null;default:false" json:"-"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Profile  *Profile  `gorm:"foreignKey:UserID" json:"profile,omitempty"`
	Patients []Patient `gorm:"foreignKey:CreatedByID" json:"patients,omitempty"`
}

func (User) TableName() string {
	return "users"
}
