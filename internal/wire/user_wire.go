package wire

import (
	"todo-app/internal/adaptor"
	"todo-app/pkg/middleware"
	"todo-app/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireUser configures the self-service profile routes
func wireUser(r chi.Router, userHandler *adaptor.UserHandler, tokens *token.Service, log *zap.Logger) {
	r.With(middleware.Auth(tokens, log)).Route("/users", func(r chi.Router) {
		r.Get("/get-user", userHandler.GetUser)
		r.Put("/update-password", userHandler.UpdatePassword)
		r.Put("/update-phone-number", userHandler.UpdatePhoneNumber)
	})
}
