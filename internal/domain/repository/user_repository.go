package repository

import (
	"context"

	"hospital-records-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, db *gorm.DB, user *entity.User) error
	// FindByUsername returns the user with their profile preloaded, or
	// (nil, nil) when no such user exists.
	FindByUsername(ctx context.Context, db *gorm.DB, username string) (*entity.User, error)
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.User, error)
}
