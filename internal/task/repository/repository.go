package repository

import (
	"time"

	"studyplan-backend/internal/task/domain"
)

// TaskRepository defines the interface for task data access.
// Lookups signal absence with a nil task and nil error.
type TaskRepository interface {
	// Create stores a new task, assigning its ID and timestamps.
	Create(task *domain.Task) error

	// FindByID finds a task by its ID.
	FindByID(id string) (*domain.Task, error)

	// FindAll returns tasks matching the filter, ordered by priority
	// (high first) then due date (earliest first). A nil filter returns
	// everything.
	FindAll(filter *domain.TaskFilter) ([]*domain.Task, error)

	// FindByDueRange returns tasks whose due date lies in [start, end]
	// inclusive. Tasks without a due date are excluded.
	FindByDueRange(start, end time.Time) ([]*domain.Task, error)

	// Update applies the mutation to the stored task as a single atomic
	// step and refreshes UpdatedAt. Returns nil if the id is unknown.
	Update(id string, apply func(*domain.Task)) (*domain.Task, error)

	// Delete removes a task by ID, reporting whether a record was removed.
	Delete(id string) (bool, error)
}
