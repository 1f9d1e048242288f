package repository

import (
	"context"

	"hospital-records-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TokenRepository interface {
	// GetOrCreate returns the user's token, creating it if absent. Safe
	// under concurrent calls for the same user: at most one token row
	// ever exists per user and all callers see the same key.
	GetOrCreate(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.Token, error)
	// FindByKey returns the token with its user and the user's profile
	// preloaded, or (nil, nil) when the key is unknown.
	FindByKey(ctx context.Context, db *gorm.DB, key string) (*entity.Token, error)
}
