package repository

import (
	"todo-app/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User UserRepository
	Todo TodoRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User: NewUserRepository(db, log),
		Todo: NewTodoRepository(db, log),
	}
}
