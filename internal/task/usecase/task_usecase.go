package usecase

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"studyplan-backend/internal/task/domain"
	"studyplan-backend/internal/task/repository"
)

// ErrTaskNotFound is returned when the addressed task does not exist.
var ErrTaskNotFound = errors.New("task not found")

// ErrInvalidTask is the base error for validation failures; wrapped
// errors carry the specific message.
var ErrInvalidTask = errors.New("invalid task data")

// taskUsecase implements TaskUsecase interface
type taskUsecase struct {
	taskRepo repository.TaskRepository
}

// NewTaskUsecase creates a new instance of taskUsecase
func NewTaskUsecase(taskRepo repository.TaskRepository) TaskUsecase {
	return &taskUsecase{taskRepo: taskRepo}
}

func (u *taskUsecase) CreateTask(req CreateTaskRequest) (*domain.Task, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidTask)
	}

	task := &domain.Task{
		Title:       req.Title,
		Description: req.Description,
		Priority:    domain.PriorityLow,
		Status:      domain.TaskStatusPending,
	}

	// An empty subjectId means no subject, same as the patch path.
	if req.SubjectID != nil && *req.SubjectID != "" {
		task.SubjectID = req.SubjectID
	}

	if req.Priority != nil {
		if !domain.ValidPriority(*req.Priority) {
			return nil, fmt.Errorf("%w: priority must be 1, 2 or 3", ErrInvalidTask)
		}
		task.Priority = *req.Priority
	}

	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		if !domain.ValidStatus(status) {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidTask, *req.Status)
		}
		task.Status = status
	}

	if req.DueDate != nil && *req.DueDate != "" {
		due, err := time.Parse(time.RFC3339, *req.DueDate)
		if err != nil {
			return nil, fmt.Errorf("%w: dueDate must be RFC3339", ErrInvalidTask)
		}
		task.DueDate = &due
	}

	if err := u.taskRepo.Create(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *taskUsecase) GetTaskByID(id string) (*domain.Task, error) {
	task, err := u.taskRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

func (u *taskUsecase) ListTasks(filter *domain.TaskFilter) ([]*domain.Task, error) {
	return u.taskRepo.FindAll(filter)
}

func (u *taskUsecase) ListTasksInRange(start, end time.Time) ([]*domain.Task, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: range end precedes start", ErrInvalidTask)
	}
	return u.taskRepo.FindByDueRange(start, end)
}

func (u *taskUsecase) UpdateTask(id string, updates TaskUpdateRequest) (*domain.Task, error) {
	// Validate the whole patch up front so the merge below cannot fail
	// halfway through.
	if updates.Title != nil && strings.TrimSpace(*updates.Title) == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", ErrInvalidTask)
	}
	if updates.Priority != nil && !domain.ValidPriority(*updates.Priority) {
		return nil, fmt.Errorf("%w: priority must be 1, 2 or 3", ErrInvalidTask)
	}
	if updates.Status != nil && !domain.ValidStatus(domain.TaskStatus(*updates.Status)) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidTask, *updates.Status)
	}

	var due *time.Time
	clearDue := false
	if updates.DueDate != nil {
		if *updates.DueDate == "" {
			clearDue = true
		} else {
			parsed, err := time.Parse(time.RFC3339, *updates.DueDate)
			if err != nil {
				return nil, fmt.Errorf("%w: dueDate must be RFC3339", ErrInvalidTask)
			}
			due = &parsed
		}
	}

	task, err := u.taskRepo.Update(id, func(task *domain.Task) {
		if updates.Title != nil {
			task.Title = *updates.Title
		}
		if updates.Description != nil {
			task.Description = *updates.Description
		}
		if updates.SubjectID != nil {
			if *updates.SubjectID == "" {
				task.SubjectID = nil
			} else {
				task.SubjectID = updates.SubjectID
			}
		}
		if updates.Priority != nil {
			task.Priority = *updates.Priority
		}
		if updates.Status != nil {
			task.Status = domain.TaskStatus(*updates.Status)
		}
		if clearDue {
			task.DueDate = nil
		} else if due != nil {
			task.DueDate = due
		}
	})
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

func (u *taskUsecase) DeleteTask(id string) error {
	removed, err := u.taskRepo.Delete(id)
	if err != nil {
		return err
	}
	if !removed {
		return ErrTaskNotFound
	}
	return nil
}
