package adaptor

import (
	"net/http"
	"strings"

	"todo-app/internal/usecase"
	"todo-app/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AdminHandler exposes the role-gated override over all todos.
// The role check itself lives in the admin middleware.
type AdminHandler struct {
	service usecase.TodoService
	log     *zap.Logger
}

func NewAdminHandler(service usecase.TodoService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		log:     log.With(zap.String("handler", "admin")),
	}
}

// ListAllTodos handles GET /admin/todos
func (h *AdminHandler) ListAllTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := h.service.ListAll(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list all todos")
		return
	}

	utils.ResponseSuccess(w, "Todos retrieved successfully", todos)
}

// DeleteTodo handles DELETE /admin/todo/{id}
func (h *AdminHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	todoID := chi.URLParam(r, "id")

	if err := h.service.DeleteAny(r.Context(), todoID); err != nil {
		h.handleServiceError(w, err, "delete todo")
		return
	}

	utils.ResponseNoContent(w)
}

func (h *AdminHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, "Todo not found")

	case strings.Contains(errMsg, "invalid"):
		h.log.Warn("Invalid input for "+operation, zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
