package usecase

import (
	"time"

	"studyplan-backend/internal/task/domain"
)

// TaskUsecase defines the interface for task business logic
type TaskUsecase interface {
	// CreateTask validates the request, applies defaults and stores a
	// new task. The referenced subject is not checked for existence.
	CreateTask(req CreateTaskRequest) (*domain.Task, error)

	// GetTaskByID retrieves a task by ID
	GetTaskByID(id string) (*domain.Task, error)

	// ListTasks retrieves tasks matching the filter, sorted by priority
	// then due date
	ListTasks(filter *domain.TaskFilter) ([]*domain.Task, error)

	// ListTasksInRange retrieves tasks due within [start, end] inclusive
	ListTasksInRange(start, end time.Time) ([]*domain.Task, error)

	// UpdateTask merges the provided fields into an existing task
	UpdateTask(id string, updates TaskUpdateRequest) (*domain.Task, error)

	// DeleteTask deletes a task
	DeleteTask(id string) error
}

// CreateTaskRequest carries the caller-supplied fields for a new task.
// Dates are RFC3339 strings.
type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	SubjectID   *string `json:"subjectId"`
	Priority    *int    `json:"priority"`
	Status      *string `json:"status"`
	DueDate     *string `json:"dueDate"`
}

// TaskUpdateRequest represents the fields that can be patched. A nil
// field is left untouched; an empty DueDate or SubjectID clears the value.
type TaskUpdateRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	SubjectID   *string `json:"subjectId,omitempty"`
	Priority    *int    `json:"priority,omitempty"`
	Status      *string `json:"status,omitempty"`
	DueDate     *string `json:"dueDate,omitempty"`
}
