package domain

import (
	"sort"
	"time"
)

// Task priority levels. Higher sorts first.
const (
	PriorityLow    = 1
	PriorityMedium = 2
	PriorityHigh   = 3
)

// TaskStatus represents the current state of a task
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// ValidStatus reports whether s is one of the known task statuses.
func ValidStatus(s TaskStatus) bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// ValidPriority reports whether p is within the 1..3 priority scale.
func ValidPriority(p int) bool {
	return p >= PriorityLow && p <= PriorityHigh
}

// Task represents a single assignment in the planner
type Task struct {
	ID                    string     `json:"id" gorm:"primaryKey"`
	Title                 string     `json:"title" gorm:"not null"`
	Description           string     `json:"description,omitempty"`
	SubjectID             *string    `json:"subjectId,omitempty" gorm:"index"` // Optional link to a subject; not enforced
	Priority              int        `json:"priority" gorm:"default:1"`
	Status                TaskStatus `json:"status" gorm:"default:pending"`
	DueDate               *time.Time `json:"dueDate,omitempty"`
	GoogleCalendarEventID *string    `json:"googleCalendarEventId,omitempty"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             time.Time  `json:"updatedAt"`
}

// TaskFilter narrows a task listing. Fields are optional and AND-composed.
type TaskFilter struct {
	SubjectID *string
	Status    *TaskStatus
	Priority  *int
}

// Matches reports whether t satisfies every predicate set on f.
// A nil filter matches everything.
func (f *TaskFilter) Matches(t *Task) bool {
	if f == nil {
		return true
	}
	if f.SubjectID != nil {
		if t.SubjectID == nil || *t.SubjectID != *f.SubjectID {
			return false
		}
	}
	if f.Status != nil && t.Status != *f.Status {
		return false
	}
	if f.Priority != nil && t.Priority != *f.Priority {
		return false
	}
	return true
}

// SortTasks orders tasks by priority (high to low), then by due date
// (earliest first). Tasks without a due date are not comparable on the
// secondary key, so priority ties involving them keep their input order.
// The sort is stable, which makes the output deterministic.
func SortTasks(tasks []*Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		if a.DueDate != nil && b.DueDate != nil {
			return a.DueDate.Before(*b.DueDate)
		}
		return false
	})
}
