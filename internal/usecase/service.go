package usecase

import (
	"todo-app/internal/data/repository"
	"todo-app/pkg/token"

	"go.uber.org/zap"
)

type Service struct {
	Auth AuthService
	Todo TodoService
	User UserService
}

func NewService(repo *repository.Repository, tokens *token.Service, log *zap.Logger) *Service {
	return &Service{
		Auth: NewAuthService(repo.User, tokens, log),
		Todo: NewTodoService(repo.Todo, log),
		User: NewUserService(repo.User, log),
	}
}
