package usecase

import "studyplan-backend/internal/subject/domain"

// SubjectUsecase defines the interface for subject business logic
type SubjectUsecase interface {
	// CreateSubject validates and stores a new subject
	CreateSubject(name, color string) (*domain.Subject, error)

	// GetSubjectByID retrieves a subject by ID
	GetSubjectByID(id string) (*domain.Subject, error)

	// ListSubjects retrieves all subjects in insertion order
	ListSubjects() ([]*domain.Subject, error)

	// UpdateSubject merges the provided fields into an existing subject
	UpdateSubject(id string, updates SubjectUpdateRequest) (*domain.Subject, error)

	// DeleteSubject deletes a subject. Tasks referencing it keep their
	// now-orphaned subjectId.
	DeleteSubject(id string) error
}

// SubjectUpdateRequest represents the fields that can be patched
type SubjectUpdateRequest struct {
	Name  *string `json:"name,omitempty"`
	Color *string `json:"color,omitempty"`
}
