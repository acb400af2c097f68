package usecase

import (
	"errors"
	"fmt"
	"strings"

	"studyplan-backend/internal/subject/domain"
	"studyplan-backend/internal/subject/repository"
)

// ErrSubjectNotFound is returned when the addressed subject does not exist.
var ErrSubjectNotFound = errors.New("subject not found")

// ErrInvalidSubject is the base error for validation failures.
var ErrInvalidSubject = errors.New("invalid subject data")

// defaultColor is used when a subject is created without one.
const defaultColor = "#3b82f6"

// subjectUsecase implements SubjectUsecase interface
type subjectUsecase struct {
	subjectRepo repository.SubjectRepository
}

// NewSubjectUsecase creates a new instance of subjectUsecase
func NewSubjectUsecase(subjectRepo repository.SubjectRepository) SubjectUsecase {
	return &subjectUsecase{subjectRepo: subjectRepo}
}

func (u *subjectUsecase) CreateSubject(name, color string) (*domain.Subject, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidSubject)
	}
	if color == "" {
		color = defaultColor
	}

	subject := &domain.Subject{
		Name:  name,
		Color: color,
	}
	if err := u.subjectRepo.Create(subject); err != nil {
		return nil, err
	}
	return subject, nil
}

func (u *subjectUsecase) GetSubjectByID(id string) (*domain.Subject, error) {
	subject, err := u.subjectRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if subject == nil {
		return nil, ErrSubjectNotFound
	}
	return subject, nil
}

func (u *subjectUsecase) ListSubjects() ([]*domain.Subject, error) {
	return u.subjectRepo.FindAll()
}

func (u *subjectUsecase) UpdateSubject(id string, updates SubjectUpdateRequest) (*domain.Subject, error) {
	if updates.Name != nil && strings.TrimSpace(*updates.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrInvalidSubject)
	}

	subject, err := u.subjectRepo.Update(id, func(subject *domain.Subject) {
		if updates.Name != nil {
			subject.Name = *updates.Name
		}
		if updates.Color != nil {
			subject.Color = *updates.Color
		}
	})
	if err != nil {
		return nil, err
	}
	if subject == nil {
		return nil, ErrSubjectNotFound
	}
	return subject, nil
}

func (u *subjectUsecase) DeleteSubject(id string) error {
	removed, err := u.subjectRepo.Delete(id)
	if err != nil {
		return err
	}
	if !removed {
		return ErrSubjectNotFound
	}
	return nil
}
