package repository

import (
	"context"
	"errors"

	"hospital-records-api/internal/domain/entity"
	domainRepo "hospital-records-api/internal/domain/repository"
	"hospital-records-api/pkg/token"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type tokenRepository struct{}

func NewTokenRepository() domainRepo.TokenRepository {
	return &tokenRepository{}
}

func (r *tokenRepository) GetOrCreate(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.Token, error) {
	key, err := token.GenerateKey()
	if err != nil {
		return nil, err
	}

	// The insert loses to any concurrent winner on the user_id unique
	// index; the follow-up select returns whichever row won.
	t := &entity.Token{Key: key, UserID: userID}
	err = db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(t).Error
	if err != nil {
		return nil, err
	}

	var out entity.Token
	if err := db.WithContext(ctx).Where("user_id = ?", userID).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *tokenRepository) FindByKey(ctx context.Context, db *gorm.DB, key string) (*entity.Token, error) {
	var t entity.Token
	err := db.WithContext(ctx).Preload("User").Preload("User.Profile").Where("key = ?", key).First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}
