package repository

import (
	"sync"
	"time"

	"studyplan-backend/internal/task/domain"

	"github.com/google/uuid"
)

// memoryTaskRepository implements TaskRepository with a mutex-guarded map.
// It is the default backing store; all data has process lifetime.
// Mutations replace the stored record as a whole so readers never observe
// a partially applied update.
type memoryTaskRepository struct {
	mu    sync.Mutex
	tasks map[string]*domain.Task
	order []string // insertion order, keeps priority ties deterministic
}

// NewMemoryTaskRepository creates an in-memory TaskRepository.
func NewMemoryTaskRepository() TaskRepository {
	return &memoryTaskRepository{
		tasks: make(map[string]*domain.Task),
	}
}

func (r *memoryTaskRepository) Create(task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now

	stored := *task
	r.tasks[stored.ID] = &stored
	r.order = append(r.order, stored.ID)
	return nil
}

func (r *memoryTaskRepository) FindByID(id string) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}
	copied := *task
	return &copied, nil
}

func (r *memoryTaskRepository) FindAll(filter *domain.TaskFilter) ([]*domain.Task, error) {
	r.mu.Lock()
	result := make([]*domain.Task, 0, len(r.order))
	for _, id := range r.order {
		task, ok := r.tasks[id]
		if !ok {
			continue
		}
		if filter.Matches(task) {
			copied := *task
			result = append(result, &copied)
		}
	}
	r.mu.Unlock()

	domain.SortTasks(result)
	return result, nil
}

func (r *memoryTaskRepository) FindByDueRange(start, end time.Time) ([]*domain.Task, error) {
	r.mu.Lock()
	result := make([]*domain.Task, 0)
	for _, id := range r.order {
		task, ok := r.tasks[id]
		if !ok || task.DueDate == nil {
			continue
		}
		if task.DueDate.Before(start) || task.DueDate.After(end) {
			continue
		}
		copied := *task
		result = append(result, &copied)
	}
	r.mu.Unlock()

	domain.SortTasks(result)
	return result, nil
}

func (r *memoryTaskRepository) Update(id string, apply func(*domain.Task)) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}

	updated := *existing
	apply(&updated)
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now()

	r.tasks[id] = &updated
	copied := updated
	return &copied, nil
}

func (r *memoryTaskRepository) Delete(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return false, nil
	}
	delete(r.tasks, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}
