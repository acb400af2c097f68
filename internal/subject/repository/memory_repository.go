package repository

import (
	"sync"
	"time"

	"studyplan-backend/internal/subject/domain"

	"github.com/google/uuid"
)

// memorySubjectRepository implements SubjectRepository with a
// mutex-guarded map plus an insertion-order index.
type memorySubjectRepository struct {
	mu       sync.Mutex
	subjects map[string]*domain.Subject
	order    []string
}

// NewMemorySubjectRepository creates an in-memory SubjectRepository.
func NewMemorySubjectRepository() SubjectRepository {
	return &memorySubjectRepository{
		subjects: make(map[string]*domain.Subject),
	}
}

func (r *memorySubjectRepository) Create(subject *domain.Subject) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if subject.ID == "" {
		subject.ID = uuid.New().String()
	}
	subject.CreatedAt = time.Now()

	stored := *subject
	r.subjects[stored.ID] = &stored
	r.order = append(r.order, stored.ID)
	return nil
}

func (r *memorySubjectRepository) FindByID(id string) (*domain.Subject, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	subject, ok := r.subjects[id]
	if !ok {
		return nil, nil
	}
	copied := *subject
	return &copied, nil
}

func (r *memorySubjectRepository) FindAll() ([]*domain.Subject, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*domain.Subject, 0, len(r.order))
	for _, id := range r.order {
		if subject, ok := r.subjects[id]; ok {
			copied := *subject
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *memorySubjectRepository) Update(id string, apply func(*domain.Subject)) (*domain.Subject, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.subjects[id]
	if !ok {
		return nil, nil
	}

	updated := *existing
	apply(&updated)
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt

	r.subjects[id] = &updated
	copied := updated
	return &copied, nil
}

func (r *memorySubjectRepository) Delete(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.subjects[id]; !ok {
		return false, nil
	}
	delete(r.subjects, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}
