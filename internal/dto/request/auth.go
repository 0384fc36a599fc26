package request

type CreateUserRequest struct {
	Username  string  `json:"username" validate:"required,min=3,max=50"`
	Email     string  `json:"email" validate:"required,email,max=100"`
	FirstName string  `json:"first_name" validate:"required,min=1,max=50"`
	LastName  string  `json:"last_name" validate:"required,min=1,max=50"`
	Password  string  `json:"password" validate:"required,min=6,max=100"`
	Role      string  `json:"role" validate:"required,min=1,max=20"`
	Phone     *string `json:"phone_number,omitempty" validate:"omitempty,max=15"`
}
