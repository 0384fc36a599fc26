package response

import (
	"time"

	"todo-app/internal/data/entity"
)

// UserResponse is the created-profile shape returned by registration.
// The bcrypt hash is part of the profile; the raw password never is.
type UserResponse struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	HashedPassword string    `json:"hashed_password"`
	Phone          *string   `json:"phone_number,omitempty"`
	Role           string    `json:"role"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func UserToResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:             user.ID.String(),
		Username:       user.Username,
		Email:          user.Email,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		HashedPassword: user.PasswordHash,
		Phone:          user.Phone,
		Role:           string(user.Role),
		IsActive:       user.IsActive,
		CreatedAt:      user.CreatedAt,
	}
}
