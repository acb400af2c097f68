package usecase

import (
	"errors"
	"fmt"
	"time"

	"studyplan-backend/internal/preferences/domain"
	"studyplan-backend/internal/preferences/repository"
)

// ErrInvalidPreferences is the base error for validation failures.
var ErrInvalidPreferences = errors.New("invalid preferences data")

// preferencesUsecase implements PreferencesUsecase interface
type preferencesUsecase struct {
	prefsRepo repository.PreferencesRepository
}

// NewPreferencesUsecase creates a new instance of preferencesUsecase
func NewPreferencesUsecase(prefsRepo repository.PreferencesRepository) PreferencesUsecase {
	return &preferencesUsecase{prefsRepo: prefsRepo}
}

func (u *preferencesUsecase) GetPreferences() (*domain.UserPreferences, error) {
	return u.prefsRepo.Get()
}

func (u *preferencesUsecase) UpdatePreferences(updates PreferencesUpdateRequest) (*domain.UserPreferences, error) {
	if updates.StudyStreak != nil && *updates.StudyStreak < 0 {
		return nil, fmt.Errorf("%w: studyStreak cannot be negative", ErrInvalidPreferences)
	}

	var lastStudy *time.Time
	clearLastStudy := false
	if updates.LastStudyDate != nil {
		if *updates.LastStudyDate == "" {
			clearLastStudy = true
		} else {
			parsed, err := time.Parse(time.RFC3339, *updates.LastStudyDate)
			if err != nil {
				return nil, fmt.Errorf("%w: lastStudyDate must be RFC3339", ErrInvalidPreferences)
			}
			lastStudy = &parsed
		}
	}

	return u.prefsRepo.Update(func(prefs *domain.UserPreferences) {
		if updates.NotificationsEnabled != nil {
			prefs.NotificationsEnabled = *updates.NotificationsEnabled
		}
		if updates.StudyStreak != nil {
			prefs.StudyStreak = *updates.StudyStreak
		}
		if clearLastStudy {
			prefs.LastStudyDate = nil
		} else if lastStudy != nil {
			prefs.LastStudyDate = lastStudy
		}
		if updates.GoogleCalendarConnected != nil {
			prefs.GoogleCalendarConnected = *updates.GoogleCalendarConnected
		}
		if updates.GoogleAccessToken != nil {
			prefs.GoogleAccessToken = normalizeToken(*updates.GoogleAccessToken)
		}
		if updates.GoogleRefreshToken != nil {
			prefs.GoogleRefreshToken = normalizeToken(*updates.GoogleRefreshToken)
		}
	})
}

// normalizeToken maps an explicit empty string to an absent token.
func normalizeToken(token string) *string {
	if token == "" {
		return nil
	}
	return &token
}

func (u *preferencesUsecase) ConnectCalendar(accessToken, refreshToken string) (*domain.UserPreferences, error) {
	if accessToken == "" {
		return nil, fmt.Errorf("%w: accessToken is required", ErrInvalidPreferences)
	}

	return u.prefsRepo.Update(func(prefs *domain.UserPreferences) {
		prefs.GoogleCalendarConnected = true
		prefs.GoogleAccessToken = &accessToken
		if refreshToken != "" {
			prefs.GoogleRefreshToken = &refreshToken
		}
	})
}

func (u *preferencesUsecase) DisconnectCalendar() (*domain.UserPreferences, error) {
	return u.prefsRepo.Update(func(prefs *domain.UserPreferences) {
		prefs.GoogleCalendarConnected = false
		prefs.GoogleAccessToken = nil
		prefs.GoogleRefreshToken = nil
	})
}
