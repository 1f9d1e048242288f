package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type SignupRequest struct {
	Username  string `json:"username" validate:"required,max=150"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,eqfield=Password2"`
	Password2 string `json:"password2" validate:"required"`
	Role      string `json:"role" validate:"omitempty,oneof=doctor admin"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Response DTOs

type SignupResponse struct {
	Message  string    `json:"message"`
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
}

type LoginResponse struct {
	Message  string    `json:"message"`
	Token    string    `json:"token"`
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
}

// UserSummary is the creator embed on patient payloads.
type UserSummary struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}
