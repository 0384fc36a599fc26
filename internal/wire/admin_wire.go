package wire

import (
	"todo-app/internal/adaptor"
	"todo-app/pkg/middleware"
	"todo-app/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireAdmin configures routes that require authentication AND the admin role
func wireAdmin(r chi.Router, adminHandler *adaptor.AdminHandler, tokens *token.Service, log *zap.Logger) {
	r.With(
		middleware.Auth(tokens, log),
		middleware.Admin(log),
	).Route("/admin", func(r chi.Router) {
		r.Get("/todos", adminHandler.ListAllTodos)
		r.Delete("/todo/{id}", adminHandler.DeleteTodo)
	})
}
