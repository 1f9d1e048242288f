package converter

import (
	"hospital-records-api/internal/delivery/dto"
	"hospital-records-api/internal/domain/entity"
)

// UserToSummary converts a User entity to the creator embed used on
// patient payloads.
func UserToSummary(user *entity.User) dto.UserSummary {
	if user == nil {
		return dto.UserSummary{}
	}

	return dto.UserSummary{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}
