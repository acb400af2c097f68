package usecase

import "studyplan-backend/internal/preferences/domain"

// PreferencesUsecase defines the interface for user-preferences logic
type PreferencesUsecase interface {
	// GetPreferences returns the singleton record, creating the default
	// one on first access.
	GetPreferences() (*domain.UserPreferences, error)

	// UpdatePreferences merges the provided fields into the singleton
	UpdatePreferences(updates PreferencesUpdateRequest) (*domain.UserPreferences, error)

	// ConnectCalendar stores the Google tokens and marks the calendar
	// as connected.
	ConnectCalendar(accessToken, refreshToken string) (*domain.UserPreferences, error)

	// DisconnectCalendar clears the tokens and the connected flag
	DisconnectCalendar() (*domain.UserPreferences, error)
}

// PreferencesUpdateRequest represents the patchable preference fields.
// Dates are RFC3339 strings; an empty LastStudyDate clears the value,
// and an empty token string clears the stored token.
type PreferencesUpdateRequest struct {
	NotificationsEnabled    *bool   `json:"notificationsEnabled,omitempty"`
	StudyStreak             *int    `json:"studyStreak,omitempty"`
	LastStudyDate           *string `json:"lastStudyDate,omitempty"`
	GoogleCalendarConnected *bool   `json:"googleCalendarConnected,omitempty"`
	GoogleAccessToken       *string `json:"googleAccessToken,omitempty"`
	GoogleRefreshToken      *string `json:"googleRefreshToken,omitempty"`
}
