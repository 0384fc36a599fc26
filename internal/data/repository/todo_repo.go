package repository

import (
	"context"
	"fmt"

	"todo-app/internal/data/entity"
	"todo-app/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TodoRepository interface {
	Create(ctx context.Context, todo *entity.Todo) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Todo, error)
	FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.Todo, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Todo, error)
	FindAll(ctx context.Context) ([]*entity.Todo, error)
	Update(ctx context.Context, todo *entity.Todo) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type todoRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTodoRepository(db database.PgxIface, log *zap.Logger) TodoRepository {
	return &todoRepository{
		db:  db,
		log: log.With(zap.String("repository", "todo")),
	}
}

func (tr *todoRepository) Create(ctx context.Context, todo *entity.Todo) error {
	query := `
		INSERT INTO todos (id, title, description, priority, complete,
		                   owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := tr.db.Exec(ctx, query,
		todo.ID,
		todo.Title,
		todo.Description,
		todo.Priority,
		todo.Complete,
		todo.OwnerID,
		todo.CreatedAt,
		todo.UpdatedAt,
	)

	if err != nil {
		tr.log.Error("Failed to create todo",
			zap.Error(err),
			zap.String("owner_id", todo.OwnerID.String()),
		)
		return fmt.Errorf("create todo for user %s: %w", todo.OwnerID.String(), err)
	}

	return nil
}

func (tr *todoRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Todo, error) {
	query := `
		SELECT id, title, description, priority, complete, owner_id,
		       created_at, updated_at
		FROM todos
		WHERE id = $1
	`

	var todo entity.Todo
	err := tr.db.QueryRow(ctx, query, id).Scan(
		&todo.ID,
		&todo.Title,
		&todo.Description,
		&todo.Priority,
		&todo.Complete,
		&todo.OwnerID,
		&todo.CreatedAt,
		&todo.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		tr.log.Error("Failed to find todo by ID",
			zap.Error(err),
			zap.String("todo_id", id.String()),
		)
		return nil, fmt.Errorf("find todo by ID %s: %w", id.String(), err)
	}

	return &todo, nil
}

// FindByIDAndOwner scopes the lookup to the owner so a foreign todo
// is indistinguishable from a missing one.
func (tr *todoRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.Todo, error) {
	query := `
		SELECT id, title, description, priority, complete, owner_id,
		       created_at, updated_at
		FROM todos
		WHERE id = $1 AND owner_id = $2
	`

	var todo entity.Todo
	err := tr.db.QueryRow(ctx, query, id, ownerID).Scan(
		&todo.ID,
		&todo.Title,
		&todo.Description,
		&todo.Priority,
		&todo.Complete,
		&todo.OwnerID,
		&todo.CreatedAt,
		&todo.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		tr.log.Error("Failed to find todo by ID and owner",
			zap.Error(err),
			zap.String("todo_id", id.String()),
			zap.String("owner_id", ownerID.String()),
		)
		return nil, fmt.Errorf("find todo %s for user %s: %w", id.String(), ownerID.String(), err)
	}

	return &todo, nil
}

func (tr *todoRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Todo, error) {
	query := `
		SELECT id, title, description, priority, complete, owner_id,
		       created_at, updated_at
		FROM todos
		WHERE owner_id = $1
		ORDER BY created_at ASC
	`

	rows, err := tr.db.Query(ctx, query, ownerID)
	if err != nil {
		tr.log.Error("Failed to get todos by owner",
			zap.Error(err),
			zap.String("owner_id", ownerID.String()),
		)
		return nil, fmt.Errorf("find todos for user %s: %w", ownerID.String(), err)
	}
	defer rows.Close()

	return scanTodos(rows)
}

func (tr *todoRepository) FindAll(ctx context.Context) ([]*entity.Todo, error) {
	query := `
		SELECT id, title, description, priority, complete, owner_id,
		       created_at, updated_at
		FROM todos
		ORDER BY created_at ASC
	`

	rows, err := tr.db.Query(ctx, query)
	if err != nil {
		tr.log.Error("Failed to get all todos", zap.Error(err))
		return nil, fmt.Errorf("find all todos: %w", err)
	}
	defer rows.Close()

	return scanTodos(rows)
}

func (tr *todoRepository) Update(ctx context.Context, todo *entity.Todo) error {
	query := `
		UPDATE todos
		SET title = $2, description = $3, priority = $4, complete = $5,
		    updated_at = $6
		WHERE id = $1
	`

	result, err := tr.db.Exec(ctx, query,
		todo.ID,
		todo.Title,
		todo.Description,
		todo.Priority,
		todo.Complete,
		todo.UpdatedAt,
	)

	if err != nil {
		tr.log.Error("Failed to update todo",
			zap.Error(err),
			zap.String("todo_id", todo.ID.String()),
		)
		return fmt.Errorf("update todo %s: %w", todo.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("todo %s not found", todo.ID.String())
	}

	return nil
}

// Delete removes the row permanently, there is no soft delete for todos
func (tr *todoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM todos WHERE id = $1`

	result, err := tr.db.Exec(ctx, query, id)
	if err != nil {
		tr.log.Error("Failed to delete todo",
			zap.Error(err),
			zap.String("todo_id", id.String()),
		)
		return fmt.Errorf("delete todo %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("todo %s not found", id.String())
	}

	return nil
}

func scanTodos(rows pgx.Rows) ([]*entity.Todo, error) {
	var todos []*entity.Todo
	for rows.Next() {
		var todo entity.Todo
		err := rows.Scan(
			&todo.ID,
			&todo.Title,
			&todo.Description,
			&todo.Priority,
			&todo.Complete,
			&todo.OwnerID,
			&todo.CreatedAt,
			&todo.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan todo row: %w", err)
		}
		todos = append(todos, &todo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate todo rows: %w", err)
	}

	return todos, nil
}
