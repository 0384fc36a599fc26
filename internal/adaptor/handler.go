package adaptor

import (
	"todo-app/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth  *AuthHandler
	Todo  *TodoHandler
	Admin *AdminHandler
	User  *UserHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:  NewAuthHandler(service.Auth, log),
		Todo:  NewTodoHandler(service.Todo, log),
		Admin: NewAdminHandler(service.Todo, log),
		User:  NewUserHandler(service.User, log),
	}
}
