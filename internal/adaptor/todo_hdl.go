package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"todo-app/internal/dto/request"
	"todo-app/internal/usecase"
	"todo-app/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TodoHandler struct {
	service usecase.TodoService
	log     *zap.Logger
}

func NewTodoHandler(service usecase.TodoService, log *zap.Logger) *TodoHandler {
	return &TodoHandler{
		service: service,
		log:     log.With(zap.String("handler", "todo")),
	}
}

// List handles GET /todos/
func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authenticated")
		return
	}

	todos, err := h.service.List(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "list todos")
		return
	}

	utils.ResponseSuccess(w, "Todos retrieved successfully", todos)
}

// Get handles GET /todos/{id}
func (h *TodoHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authenticated")
		return
	}

	todoID := chi.URLParam(r, "id")

	todo, err := h.service.Get(r.Context(), userID, todoID)
	if err != nil {
		h.handleServiceError(w, err, "get todo")
		return
	}

	utils.ResponseSuccess(w, "Todo retrieved successfully", todo)
}

// Create handles POST /todos/
func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authenticated")
		return
	}

	var req request.TodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	todo, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(w, err, "create todo")
		return
	}

	utils.ResponseCreated(w, "Todo added successfully", todo)
}

// Update handles PUT /todos/{id}, full field replacement
func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authenticated")
		return
	}

	todoID := chi.URLParam(r, "id")

	var req request.TodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	todo, err := h.service.Update(r.Context(), userID, todoID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update todo")
		return
	}

	utils.ResponseSuccess(w, "Todo updated successfully", todo)
}

// Delete handles DELETE /todos/{id}
func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authenticated")
		return
	}

	todoID := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), userID, todoID); err != nil {
		h.handleServiceError(w, err, "delete todo")
		return
	}

	utils.ResponseNoContent(w)
}

func (h *TodoHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid"):
		h.log.Warn("Invalid input for "+operation, zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
