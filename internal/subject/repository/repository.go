package repository

import "studyplan-backend/internal/subject/domain"

// SubjectRepository defines the interface for subject data access.
// Lookups signal absence with a nil subject and nil error.
type SubjectRepository interface {
	// Create stores a new subject, assigning its ID and creation time.
	Create(subject *domain.Subject) error

	// FindByID finds a subject by its ID.
	FindByID(id string) (*domain.Subject, error)

	// FindAll returns all subjects in insertion order.
	FindAll() ([]*domain.Subject, error)

	// Update applies the mutation to the stored subject atomically.
	// Returns nil if the id is unknown.
	Update(id string, apply func(*domain.Subject)) (*domain.Subject, error)

	// Delete removes a subject by ID, reporting whether a record was
	// removed. Tasks referencing the subject are left untouched.
	Delete(id string) (bool, error)
}
