package wire

import (
	"todo-app/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireAuth configures the public registration and login routes
func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/create_user", authHandler.CreateUser)
		r.Post("/get-token", authHandler.GetToken)
	})
}
