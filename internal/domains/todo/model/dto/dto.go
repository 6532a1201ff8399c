package dto

import (
	"github.com/google/uuid"

	"todosvc/internal/domains/todo/model"
	"todosvc/shared/constant"
	"todosvc/shared/timezone"
)

type CreateTodoRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

func (c *CreateTodoRequest) ToModel() model.Todo {
	return model.Todo{
		ID:          uuid.NewString(),
		Title:       c.Title,
		Description: c.Description,
		Completed:   false,
		CreatedAt:   timezone.Now(),
	}
}

// UpdateTodoRequest is a partial update: nil fields keep their stored value.
// An empty title is accepted here even though create rejects it.
type UpdateTodoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

func (u *UpdateTodoRequest) Apply(todo *model.Todo) {
	if u.Title != nil {
		todo.Title = *u.Title
	}

	if u.Description != nil {
		todo.Description = *u.Description
	}

	if u.Completed != nil {
		todo.Completed = *u.Completed
	}
}

type TodoResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"created_at"`
}

func (r *TodoResponse) FromModel(model model.Todo) {
	r.ID = model.ID
	r.Title = model.Title
	r.Description = model.Description
	r.Completed = model.Completed
	r.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
}

type GetTodosResponse []TodoResponse

// FromModels always yields a non-nil slice so an empty store encodes as [].
func (r *GetTodosResponse) FromModels(models []model.Todo) {
	todos := make(GetTodosResponse, len(models))
	for i, mod := range models {
		todos[i].FromModel(mod)
	}

	*r = todos
}
