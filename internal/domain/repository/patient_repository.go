package repository

import (
	"context"

	"hospital-records-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	// FindByID returns the patient with their creator preloaded, or
	// (nil, nil) when no such patient exists.
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Patient, error)
	// FindAll returns every patient, newest first.
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Patient, error)
	// FindByCreator returns the patients created by the given user, newest first.
	FindByCreator(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]entity.Patient, error)
}
