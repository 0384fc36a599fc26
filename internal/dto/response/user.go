package response

import "todo-app/internal/data/entity"

// UserInfoResponse is the self-service profile view. It exposes the
// password hash and phone number, matching the profile endpoints.
type UserInfoResponse struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Role     string  `json:"role"`
	Password string  `json:"password"`
	Phone    *string `json:"phone_number"`
}

func UserToInfoResponse(user *entity.User) *UserInfoResponse {
	return &UserInfoResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Role:     string(user.Role),
		Password: user.PasswordHash,
		Phone:    user.Phone,
	}
}
