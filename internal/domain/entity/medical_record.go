package entity

import (
	"time"

	"github.com/google/uuid"
)

// MedicalRecord is a clinical note attached to a patient. Its ownership is
// transitively the patient's CreatedByID; records are never updated or
// deleted through the API.
type MedicalRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	Symptoms  string    `gorm:"type:text;not null" json:"symptoms"`
	Diagnosis string    `gorm:"type:text;not null" json:"diagnosis"`
	Treatment string    `gorm:"type:text;not null" json:"treatment"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (MedicalRecord) TableName() string {
	return "medical_records"
}
