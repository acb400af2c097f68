package repository

import (
	"time"

	"studyplan-backend/internal/subject/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormSubjectRepository implements SubjectRepository using GORM.
type gormSubjectRepository struct {
	db *gorm.DB
}

// NewGormSubjectRepository creates a new GORM-based SubjectRepository
func NewGormSubjectRepository(db *gorm.DB) SubjectRepository {
	return &gormSubjectRepository{db: db}
}

func (r *gormSubjectRepository) Create(subject *domain.Subject) error {
	if subject.ID == "" {
		subject.ID = uuid.New().String()
	}
	subject.CreatedAt = time.Now()
	return r.db.Create(subject).Error
}

func (r *gormSubjectRepository) FindByID(id string) (*domain.Subject, error) {
	var subject domain.Subject
	err := r.db.Where("id = ?", id).First(&subject).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &subject, nil
}

func (r *gormSubjectRepository) FindAll() ([]*domain.Subject, error) {
	var subjects []*domain.Subject
	err := r.db.Order("created_at ASC").Find(&subjects).Error
	return subjects, err
}

func (r *gormSubjectRepository) Update(id string, apply func(*domain.Subject)) (*domain.Subject, error) {
	var updated *domain.Subject
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var subject domain.Subject
		if err := tx.Where("id = ?", id).First(&subject).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil
			}
			return err
		}

		apply(&subject)
		subject.ID = id

		if err := tx.Save(&subject).Error; err != nil {
			return err
		}
		updated = &subject
		return nil
	})
	return updated, err
}

func (r *gormSubjectRepository) Delete(id string) (bool, error) {
	res := r.db.Delete(&domain.Subject{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
