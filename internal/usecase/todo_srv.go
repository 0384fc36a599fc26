package usecase

import (
	"context"
	"fmt"
	"time"

	"todo-app/internal/data/entity"
	"todo-app/internal/data/repository"
	"todo-app/internal/dto/request"
	"todo-app/internal/dto/response"
	"todo-app/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TodoService interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]*response.TodoResponse, error)
	Get(ctx context.Context, ownerID uuid.UUID, todoID string) (*response.TodoResponse, error)
	Create(ctx context.Context, ownerID uuid.UUID, req *request.TodoRequest) (*response.TodoResponse, error)
	Update(ctx context.Context, ownerID uuid.UUID, todoID string, req *request.TodoRequest) (*response.TodoResponse, error)
	Delete(ctx context.Context, ownerID uuid.UUID, todoID string) error

	// Admin operations, not owner-scoped
	ListAll(ctx context.Context) ([]*response.TodoResponse, error)
	DeleteAny(ctx context.Context, todoID string) error
}

type todoService struct {
	todoRepo repository.TodoRepository
	log      *zap.Logger
}

func NewTodoService(todoRepo repository.TodoRepository, log *zap.Logger) TodoService {
	return &todoService{
		todoRepo: todoRepo,
		log:      log,
	}
}

func (s *todoService) List(ctx context.Context, ownerID uuid.UUID) ([]*response.TodoResponse, error) {
	todos, err := s.todoRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		s.log.Error("Failed to list todos", zap.Error(err), zap.String("owner_id", ownerID.String()))
		return nil, fmt.Errorf("failed to get todos")
	}

	return response.TodosToResponse(todos), nil
}

func (s *todoService) Get(ctx context.Context, ownerID uuid.UUID, todoID string) (*response.TodoResponse, error) {
	id, err := uuid.Parse(todoID)
	if err != nil {
		return nil, fmt.Errorf("invalid todo ID")
	}

	todo, err := s.todoRepo.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		s.log.Error("Failed to get todo", zap.Error(err), zap.String("todo_id", todoID))
		return nil, fmt.Errorf("failed to get todo")
	}
	if todo == nil {
		// Foreign and missing todos report identically
		return nil, fmt.Errorf("Todo id:%s not found for user %s", todoID, ownerID.String())
	}

	return response.TodoToResponse(todo), nil
}

func (s *todoService) Create(ctx context.Context, ownerID uuid.UUID, req *request.TodoRequest) (*response.TodoResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create todo validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if req.Priority == 0 {
		req.Priority = 1
	}

	now := time.Now()
	todo := &entity.Todo{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Complete:    req.Complete,
		OwnerID:     ownerID,
	}

	if err := s.todoRepo.Create(ctx, todo); err != nil {
		s.log.Error("Failed to create todo", zap.Error(err), zap.String("owner_id", ownerID.String()))
		return nil, fmt.Errorf("failed to create todo")
	}

	s.log.Info("Todo created",
		zap.String("todo_id", todo.ID.String()),
		zap.String("owner_id", ownerID.String()))

	return response.TodoToResponse(todo), nil
}

// Update replaces every mutable field of an owned todo
func (s *todoService) Update(ctx context.Context, ownerID uuid.UUID, todoID string, req *request.TodoRequest) (*response.TodoResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update todo validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(todoID)
	if err != nil {
		return nil, fmt.Errorf("invalid todo ID")
	}

	todo, err := s.todoRepo.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		s.log.Error("Failed to get todo for update", zap.Error(err), zap.String("todo_id", todoID))
		return nil, fmt.Errorf("failed to update todo")
	}
	if todo == nil {
		return nil, fmt.Errorf("todo not found")
	}

	todo.Title = req.Title
	todo.Description = req.Description
	todo.Priority = req.Priority
	if todo.Priority == 0 {
		todo.Priority = 1
	}
	todo.Complete = req.Complete
	todo.UpdatedAt = time.Now()

	if err := s.todoRepo.Update(ctx, todo); err != nil {
		s.log.Error("Failed to update todo", zap.Error(err), zap.String("todo_id", todoID))
		return nil, fmt.Errorf("failed to update todo")
	}

	s.log.Info("Todo updated",
		zap.String("todo_id", todo.ID.String()),
		zap.String("owner_id", ownerID.String()))

	return response.TodoToResponse(todo), nil
}

func (s *todoService) Delete(ctx context.Context, ownerID uuid.UUID, todoID string) error {
	id, err := uuid.Parse(todoID)
	if err != nil {
		return fmt.Errorf("invalid todo ID")
	}

	todo, err := s.todoRepo.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		s.log.Error("Failed to get todo for delete", zap.Error(err), zap.String("todo_id", todoID))
		return fmt.Errorf("failed to delete todo")
	}
	if todo == nil {
		return fmt.Errorf("todo not found")
	}

	if err := s.todoRepo.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete todo", zap.Error(err), zap.String("todo_id", todoID))
		return fmt.Errorf("failed to delete todo")
	}

	s.log.Info("Todo deleted",
		zap.String("todo_id", todoID),
		zap.String("owner_id", ownerID.String()))

	return nil
}

// ListAll returns every todo regardless of owner
func (s *todoService) ListAll(ctx context.Context) ([]*response.TodoResponse, error) {
	todos, err := s.todoRepo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list all todos", zap.Error(err))
		return nil, fmt.Errorf("failed to get todos")
	}

	return response.TodosToResponse(todos), nil
}

// DeleteAny deletes a todo without an ownership check
func (s *todoService) DeleteAny(ctx context.Context, todoID string) error {
	id, err := uuid.Parse(todoID)
	if err != nil {
		return fmt.Errorf("invalid todo ID")
	}

	todo, err := s.todoRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get todo for admin delete", zap.Error(err), zap.String("todo_id", todoID))
		return fmt.Errorf("failed to delete todo")
	}
	if todo == nil {
		return fmt.Errorf("todo not found")
	}

	if err := s.todoRepo.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete todo", zap.Error(err), zap.String("todo_id", todoID))
		return fmt.Errorf("failed to delete todo")
	}

	s.log.Info("Todo deleted by admin", zap.String("todo_id", todoID))

	return nil
}
