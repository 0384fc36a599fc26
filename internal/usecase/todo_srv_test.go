package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"todo-app/internal/data/entity"
	"todo-app/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Mock repository for testing
type mockTodoRepository struct {
	todos map[uuid.UUID]*entity.Todo
}

func newMockTodoRepository() *mockTodoRepository {
	return &mockTodoRepository{
		todos: make(map[uuid.UUID]*entity.Todo),
	}
}

func (m *mockTodoRepository) Create(ctx context.Context, todo *entity.Todo) error {
	m.todos[todo.ID] = todo
	return nil
}

func (m *mockTodoRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Todo, error) {
	todo, ok := m.todos[id]
	if !ok {
		return nil, nil
	}
	return todo, nil
}

func (m *mockTodoRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.Todo, error) {
	todo, ok := m.todos[id]
	if !ok || todo.OwnerID != ownerID {
		return nil, nil
	}
	return todo, nil
}

func (m *mockTodoRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Todo, error) {
	var todos []*entity.Todo
	for _, todo := range m.todos {
		if todo.OwnerID == ownerID {
			todos = append(todos, todo)
		}
	}
	return todos, nil
}

func (m *mockTodoRepository) FindAll(ctx context.Context) ([]*entity.Todo, error) {
	var todos []*entity.Todo
	for _, todo := range m.todos {
		todos = append(todos, todo)
	}
	return todos, nil
}

func (m *mockTodoRepository) Update(ctx context.Context, todo *entity.Todo) error {
	m.todos[todo.ID] = todo
	return nil
}

func (m *mockTodoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.todos, id)
	return nil
}

func seedTodo(repo *mockTodoRepository, ownerID uuid.UUID) *entity.Todo {
	now := time.Now()
	todo := &entity.Todo{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       "Test Todo",
		Description: "This is a test todo item",
		Priority:    1,
		Complete:    false,
		OwnerID:     ownerID,
	}
	repo.todos[todo.ID] = todo
	return todo
}

func TestTodoService_CreateAndGetRoundTrip(t *testing.T) {
	repo := newMockTodoRepository()
	svc := NewTodoService(repo, zap.NewNop())
	ctx := context.Background()
	ownerID := uuid.New()

	created, err := svc.Create(ctx, ownerID, &request.TodoRequest{
		Title:       "Buy milk",
		Description: "2%",
		Priority:    2,
		Complete:    false,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.OwnerID != ownerID.String() {
		t.Errorf("Expected owner %s, got %s", ownerID, created.OwnerID)
	}

	got, err := svc.Get(ctx, ownerID, created.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Title != "Buy milk" || got.Description != "2%" || got.Priority != 2 || got.Complete {
		t.Errorf("Round trip mismatch: %+v", got)
	}
}

func TestTodoService_CreateDefaultPriority(t *testing.T) {
	repo := newMockTodoRepository()
	svc := NewTodoService(repo, zap.NewNop())

	created, err := svc.Create(context.Background(), uuid.New(), &request.TodoRequest{
		Title:       "No priority",
		Description: "priority omitted",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.Priority != 1 {
		t.Errorf("Expected default priority 1, got %d", created.Priority)
	}
}

func TestTodoService_CreateValidation(t *testing.T) {
	repo := newMockTodoRepository()
	svc := NewTodoService(repo, zap.NewNop())
	ctx := context.Background()

	invalid := []*request.TodoRequest{
		{Title: "", Description: "desc"},
		{Title: "title", Description: ""},
		{Title: "title", Description: "desc", Priority: 11},
		{Title: strings.Repeat("x", 101), Description: "desc"},
		{Title: "title", Description: strings.Repeat("x", 501)},
	}

	for i, req := range invalid {
		if _, err := svc.Create(ctx, uuid.New(), req); err == nil {
			t.Errorf("Case %d: expected validation error", i)
		}
	}
}

func TestTodoService_GetByNonOwnerIsNotFound(t *testing.T) {
	repo := newMockTodoRepository()
	svc := NewTodoService(repo, zap.NewNop())
	ctx := context.Background()

	owner := uuid.New()
	stranger := uuid.New()
	todo := seedTodo(repo, owner)

	_, err := svc.Get(ctx, stranger, todo.ID.String())
	if err == nil {
		t.Fatal("Expected not-found for non-owner")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("Expected a not-found error, got %v", err)
	}

	// The record must be untouched and still visible to its owner
	if _, err := svc.Get(ctx, owner, todo.ID.String()); err != nil {
		t.Errorf("Owner lookup failed: %v", err)
	}
}

func TestTodoService_UpdateByNonOwnerIsNotFound(t *testing.T) {
	repo := newMockTodoRepository()
	svc := NewTodoService(repo, zap.NewNop())
	ctx := context.Background()

	todo := seedTodo(repo, uuid.New())

	_, err := svc.Update(ctx, uuid.New(), todo.ID.String(), &request.TodoRequest{
		Title:       "hijacked",
		Description: "hijacked",
		Priority:    1,
	})
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("Expected not-found error, got %v", err)
	}
	if repo.todos[todo.ID].Title != "Test Todo" {
		t.Error("Todo must not be modified by a non-owner")
	}
}

func TestTodoService_DeleteByNonOwnerIsNotFound(t *testing.T) {
	repo := newMockTodoRepository()
	svc := NewTodoService(repo, zap.NewNop())
	ctx := context.Background()

	todo := seedTodo(repo, uuid.New())

	err := svc.Delete(ctx, uuid.New(), todo.ID.String())
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("Expected not-found error, got %v", err)
	}
	if _, ok := repo.todos[todo.ID]; !ok {
		t.Error("Todo must not be deleted by a non-owner")
	}
}

func TestTodoService_UpdateReplacesAllFields(t *testing.T) {
	repo := newMockTodoRepository()
	svc := NewTodoService(repo, zap.NewNop())
	ctx := context.Background()

	owner := uuid.New()
	todo := seedTodo(repo, owner)

	updated, err := svc.Update(ctx, owner, todo.ID.String(), &request.TodoRequest{
		Title:       "New title",
		Description: "New description",
		Priority:    9,
		Complete:    true,
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Title != "New title" || updated.Description != "New description" ||
		updated.Priority != 9 || !updated.Complete {
		t.Errorf("Full replacement mismatch: %+v", updated)
	}
}

func TestTodoService_AdminSeesAllOwners(t *testing.T) {
	repo := newMockTodoRepository()
	svc := NewTodoService(repo, zap.NewNop())
	ctx := context.Background()

	seedTodo(repo, uuid.New())
	seedTodo(repo, uuid.New())

	todos, err := svc.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(todos) != 2 {
		t.Errorf("Expected 2 todos, got %d", len(todos))
	}
}

func TestTodoService_DeleteAnyIgnoresOwnership(t *testing.T) {
	repo := newMockTodoRepository()
	svc := NewTodoService(repo, zap.NewNop())
	ctx := context.Background()

	todo := seedTodo(repo, uuid.New())

	if err := svc.DeleteAny(ctx, todo.ID.String()); err != nil {
		t.Fatalf("DeleteAny failed: %v", err)
	}

	// Deleting again reports not found, delete is not idempotent
	err := svc.DeleteAny(ctx, todo.ID.String())
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("Expected not-found on second delete, got %v", err)
	}
}
