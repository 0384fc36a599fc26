package entity

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	Base
	Username     string   `db:"username"`
	Email        string   `db:"email"`
	FirstName    string   `db:"first_name"`
	LastName     string   `db:"last_name"`
	PasswordHash string   `db:"hashed_password"`
	Phone        *string  `db:"phone_number"`
	Role         UserRole `db:"role"`
	IsActive     bool     `db:"is_active"`
}
