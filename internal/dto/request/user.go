package request

type UpdatePasswordRequest struct {
	NewPassword string `json:"new_password" validate:"required,min=6,max=100"`
}

// No phone format validation beyond a length cap
type UpdatePhoneRequest struct {
	NewPhoneNumber string `json:"new_phone_number" validate:"required,max=15"`
}
