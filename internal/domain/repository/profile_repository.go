package repository

import (
	"context"

	"hospital-records-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileRepository interface {
	Create(ctx context.Context, db *gorm.DB, profile *entity.Profile) error
	FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.Profile, error)
}
