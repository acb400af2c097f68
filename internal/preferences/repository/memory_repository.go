package repository

import (
	"sync"

	"studyplan-backend/internal/preferences/domain"

	"github.com/google/uuid"
)

// memoryPreferencesRepository holds the singleton record behind a mutex.
type memoryPreferencesRepository struct {
	mu    sync.Mutex
	prefs *domain.UserPreferences
}

// NewMemoryPreferencesRepository creates an in-memory PreferencesRepository.
func NewMemoryPreferencesRepository() PreferencesRepository {
	return &memoryPreferencesRepository{}
}

func defaultPreferences() *domain.UserPreferences {
	return &domain.UserPreferences{
		ID:                      uuid.New().String(),
		GoogleCalendarConnected: false,
		NotificationsEnabled:    true,
		StudyStreak:             0,
	}
}

func (r *memoryPreferencesRepository) Get() (*domain.UserPreferences, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.prefs == nil {
		r.prefs = defaultPreferences()
	}
	copied := *r.prefs
	return &copied, nil
}

func (r *memoryPreferencesRepository) Update(apply func(*domain.UserPreferences)) (*domain.UserPreferences, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.prefs == nil {
		r.prefs = defaultPreferences()
	}

	updated := *r.prefs
	apply(&updated)
	updated.ID = r.prefs.ID

	r.prefs = &updated
	copied := updated
	return &copied, nil
}
