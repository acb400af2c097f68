package repository

import (
	"time"

	"studyplan-backend/internal/task/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormTaskRepository implements TaskRepository using GORM. It is the
// substitutable durable backend; the memory variant stays the default.
type gormTaskRepository struct {
	db *gorm.DB
}

// NewGormTaskRepository creates a new GORM-based TaskRepository
func NewGormTaskRepository(db *gorm.DB) TaskRepository {
	return &gormTaskRepository{db: db}
}

// taskOrder matches the in-memory sort contract: priority descending,
// due date ascending with NULLs last, creation time as the tiebreaker.
const taskOrder = "priority DESC, CASE WHEN due_date IS NULL THEN 1 ELSE 0 END, due_date ASC, created_at ASC"

func (r *gormTaskRepository) Create(task *domain.Task) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now
	return r.db.Create(task).Error
}

func (r *gormTaskRepository) FindByID(id string) (*domain.Task, error) {
	var task domain.Task
	err := r.db.Where("id = ?", id).First(&task).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *gormTaskRepository) FindAll(filter *domain.TaskFilter) ([]*domain.Task, error) {
	var tasks []*domain.Task

	query := r.db.Model(&domain.Task{})
	if filter != nil {
		if filter.SubjectID != nil {
			query = query.Where("subject_id = ?", *filter.SubjectID)
		}
		if filter.Status != nil {
			query = query.Where("status = ?", *filter.Status)
		}
		if filter.Priority != nil {
			query = query.Where("priority = ?", *filter.Priority)
		}
	}

	err := query.Order(taskOrder).Find(&tasks).Error
	return tasks, err
}

func (r *gormTaskRepository) FindByDueRange(start, end time.Time) ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := r.db.Where("due_date IS NOT NULL AND due_date >= ? AND due_date <= ?", start, end).
		Order(taskOrder).Find(&tasks).Error
	return tasks, err
}

func (r *gormTaskRepository) Update(id string, apply func(*domain.Task)) (*domain.Task, error) {
	var updated *domain.Task
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var task domain.Task
		if err := tx.Where("id = ?", id).First(&task).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil
			}
			return err
		}

		apply(&task)
		task.ID = id
		task.UpdatedAt = time.Now()

		if err := tx.Save(&task).Error; err != nil {
			return err
		}
		updated = &task
		return nil
	})
	return updated, err
}

func (r *gormTaskRepository) Delete(id string) (bool, error) {
	res := r.db.Delete(&domain.Task{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
