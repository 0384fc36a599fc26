package response

import "todo-app/internal/data/entity"

type TodoResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
	Complete    bool   `json:"complete"`
	OwnerID     string `json:"owner_id"`
}

func TodoToResponse(todo *entity.Todo) *TodoResponse {
	return &TodoResponse{
		ID:          todo.ID.String(),
		Title:       todo.Title,
		Description: todo.Description,
		Priority:    todo.Priority,
		Complete:    todo.Complete,
		OwnerID:     todo.OwnerID.String(),
	}
}

func TodosToResponse(todos []*entity.Todo) []*TodoResponse {
	responses := make([]*TodoResponse, len(todos))
	for i, todo := range todos {
		responses[i] = TodoToResponse(todo)
	}
	return responses
}
