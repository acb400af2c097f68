package repository

import "studyplan-backend/internal/preferences/domain"

// PreferencesRepository manages the singleton user-preferences record.
type PreferencesRepository interface {
	// Get returns the preferences record, creating the default one on
	// first access.
	Get() (*domain.UserPreferences, error)

	// Update applies the mutation to the singleton atomically, creating
	// the default record first if absent.
	Update(apply func(*domain.UserPreferences)) (*domain.UserPreferences, error)
}
