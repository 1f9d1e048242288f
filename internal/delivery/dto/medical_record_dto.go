package dto

import (
	"time"

	"github.com/google/uuid"
)

// AddMedicalRecordRequest carries the target patient id in the body. The
// id is resolved before any ownership check; a malformed or unknown id is
// reported as not found.
type AddMedicalRecordRequest struct {
	Patient   string `json:"patient" validate:"required"`
	Symptoms  string `json:"symptoms" validate:"required"`
	Diagnosis string `json:"diagnosis" validate:"required"`
	Treatment string `json:"treatment" validate:"required"`
}

type MedicalRecordResponse struct {
	ID          uuid.UUID `json:"id"`
	Patient     uuid.UUID `json:"patient"`
	PatientName string    `json:"patient_name"`
	Symptoms    string    `json:"symptoms"`
	Diagnosis   string    `json:"diagnosis"`
	Treatment   string    `json:"treatment"`
	CreatedAt   time.Time `json:"created_at"`
}
