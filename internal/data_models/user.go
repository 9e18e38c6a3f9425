package dto

import (
	"time"

	"task-manager.com/task-manager/internal/domain"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse never carries the password hash.
type UserResponse struct {
	ID         string     `json:"id"`
	Email      string     `json:"email"`
	Username   string     `json:"username"`
	IsActive   bool       `json:"is_active"`
	IsVerified bool       `json:"is_verified"`
	CreatedAt  time.Time  `json:"created_at"`
	LastLogin  *time.Time `json:"last_login,omitempty"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// NewUserResponse maps a user entity to its response shape.
func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:         u.ID().String(),
		Email:      u.Email(),
		Username:   u.Username(),
		IsActive:   u.IsActive(),
		IsVerified: u.IsVerified(),
		CreatedAt:  u.CreatedAt(),
		LastLogin:  u.LastLogin(),
	}
}
