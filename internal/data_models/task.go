package dto

import (
	"time"

	"task-manager.com/task-manager/internal/domain"
)

type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	AutoAssign  bool   `json:"auto_assign"`
}

// UpdateTaskRequest is a partial update: nil fields are left untouched.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
}

type ListTasksRequest struct {
	Status     string `query:"status"`
	Priority   string `query:"priority"`
	AssignedTo string `query:"assigned_to"`
	Limit      int    `query:"limit"`
	Offset     int    `query:"offset"`
}

type AssignTaskRequest struct {
	UserID string `json:"user_id"`
}

type TaskResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	AssignedTo  *string    `json:"assigned_to,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type TaskListResponse struct {
	Tasks  []TaskResponse `json:"tasks"`
	Total  int64          `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// NewTaskResponse maps a task entity to its response shape.
func NewTaskResponse(t *domain.Task) TaskResponse {
	var assignedTo *string
	if id := t.AssignedTo(); id != nil {
		s := id.String()
		assignedTo = &s
	}
	return TaskResponse{
		ID:          t.ID().String(),
		Title:       t.Title(),
		Description: t.Description(),
		Priority:    t.Priority().String(),
		Status:      t.Status().String(),
		AssignedTo:  assignedTo,
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
		CompletedAt: t.CompletedAt(),
	}
}
