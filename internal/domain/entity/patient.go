package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient is a hospital patient record. CreatedByID is set server-side to
// the acting user at creation time and never reassigned.
type Patient struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Age         int       `gorm:"not null" json:"age"`
	Gender      string    `gorm:"type:varchar(10);not null" json:"gender"`
	Address     string    `gorm:"type:text;not null" json:"address"`
	CreatedByID uuid.UUID `gorm:"type:uuid;not null;index" json:"created_by_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	CreatedBy      User            `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
	MedicalRecords []MedicalRecord `gorm:"foreignKey:PatientID" json:"medical_records,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// Gender constants
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)
