package request

// TodoRequest is used for both create and full-replace update
type TodoRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"required,min=1,max=500"`
	Priority    int    `json:"priority" validate:"omitempty,gte=1,lte=10"`
	Complete    bool   `json:"complete"`
}
