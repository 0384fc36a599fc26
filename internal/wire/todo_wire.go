package wire

import (
	"todo-app/internal/adaptor"
	"todo-app/pkg/middleware"
	"todo-app/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireTodo configures the owner-scoped todo CRUD routes
func wireTodo(r chi.Router, todoHandler *adaptor.TodoHandler, tokens *token.Service, log *zap.Logger) {
	r.With(middleware.Auth(tokens, log)).Route("/todos", func(r chi.Router) {
		r.Get("/", todoHandler.List)
		r.Post("/", todoHandler.Create)
		r.Get("/{id}", todoHandler.Get)
		r.Put("/{id}", todoHandler.Update)
		r.Delete("/{id}", todoHandler.Delete)
	})
}
