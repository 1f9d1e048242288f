package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreatePatientRequest carries no creator field on purpose: created_by is
// always forced to the acting user server-side.
type CreatePatientRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	Age     int    `json:"age" validate:"required,gt=0"`
	Gender  string `json:"gender" validate:"required,oneof=Male Female Other"`
	Address string `json:"address" validate:"required"`
}

type PatientResponse struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Age       int         `json:"age"`
	Gender    string      `json:"gender"`
	Address   string      `json:"address"`
	CreatedBy UserSummary `json:"created_by"`
	CreatedAt time.Time   `json:"created_at"`
}
