package wire

import (
	"net/http"
	"time"

	"todo-app/internal/adaptor"
	"todo-app/internal/data/repository"
	"todo-app/internal/usecase"
	"todo-app/pkg/middleware"
	"todo-app/pkg/token"
	"todo-app/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired application
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	tokens := token.NewService(config.JWT.Secret, time.Duration(config.JWT.ExpiryMinutes)*time.Minute)

	service := usecase.NewService(repo, tokens, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, tokens, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, tokens *token.Service, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAuth(r, handler.Auth)
	wireTodo(r, handler.Todo, tokens, logger)
	wireAdmin(r, handler.Admin, tokens, logger)
	wireUser(r, handler.User, tokens, logger)

	// Health check endpoint
	r.Get("/healthy", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
