package usecase

import (
	"errors"
	"testing"

	"studyplan-backend/internal/preferences/repository"
)

func boolPtr(b bool) *bool    { return &b }
func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

func newUsecase() PreferencesUsecase {
	return NewPreferencesUsecase(repository.NewMemoryPreferencesRepository())
}

func TestGetPreferencesFreshStore(t *testing.T) {
	u := newUsecase()

	prefs, err := u.GetPreferences()
	if err != nil {
		t.Fatalf("GetPreferences: %v", err)
	}
	if prefs.GoogleCalendarConnected {
		t.Error("fresh store must report googleCalendarConnected=false")
	}
	if prefs.StudyStreak != 0 {
		t.Errorf("fresh store streak = %d, want 0", prefs.StudyStreak)
	}
}

func TestUpdatePreferencesPartial(t *testing.T) {
	u := newUsecase()

	prefs, err := u.UpdatePreferences(PreferencesUpdateRequest{
		NotificationsEnabled: boolPtr(false),
		StudyStreak:          intPtr(5),
	})
	if err != nil {
		t.Fatalf("UpdatePreferences: %v", err)
	}
	if prefs.NotificationsEnabled {
		t.Error("notifications flag not applied")
	}
	if prefs.StudyStreak != 5 {
		t.Errorf("streak = %d, want 5", prefs.StudyStreak)
	}
}

func TestUpdatePreferencesCalendarFields(t *testing.T) {
	u := newUsecase()

	prefs, err := u.UpdatePreferences(PreferencesUpdateRequest{
		GoogleCalendarConnected: boolPtr(true),
		GoogleAccessToken:       strPtr("access"),
		GoogleRefreshToken:      strPtr("refresh"),
		StudyStreak:             intPtr(5),
	})
	if err != nil {
		t.Fatalf("UpdatePreferences: %v", err)
	}
	if !prefs.GoogleCalendarConnected {
		t.Error("connected flag not applied")
	}
	if prefs.GoogleAccessToken == nil || *prefs.GoogleAccessToken != "access" {
		t.Error("access token not applied")
	}
	if prefs.GoogleRefreshToken == nil || *prefs.GoogleRefreshToken != "refresh" {
		t.Error("refresh token not applied")
	}
	if prefs.StudyStreak != 5 {
		t.Errorf("streak = %d, want 5", prefs.StudyStreak)
	}

	// An explicit empty token clears the stored value.
	prefs, err = u.UpdatePreferences(PreferencesUpdateRequest{
		GoogleAccessToken: strPtr(""),
	})
	if err != nil {
		t.Fatalf("UpdatePreferences: %v", err)
	}
	if prefs.GoogleAccessToken != nil {
		t.Error("empty access token must clear the stored value")
	}
	if prefs.GoogleRefreshToken == nil {
		t.Error("untouched refresh token must survive the patch")
	}
}

func TestUpdatePreferencesValidation(t *testing.T) {
	u := newUsecase()

	if _, err := u.UpdatePreferences(PreferencesUpdateRequest{StudyStreak: intPtr(-1)}); !errors.Is(err, ErrInvalidPreferences) {
		t.Errorf("negative streak: got %v, want ErrInvalidPreferences", err)
	}
	if _, err := u.UpdatePreferences(PreferencesUpdateRequest{LastStudyDate: strPtr("yesterday")}); !errors.Is(err, ErrInvalidPreferences) {
		t.Errorf("malformed date: got %v, want ErrInvalidPreferences", err)
	}
}

func TestConnectDisconnectCalendar(t *testing.T) {
	u := newUsecase()

	prefs, err := u.ConnectCalendar("access", "refresh")
	if err != nil {
		t.Fatalf("ConnectCalendar: %v", err)
	}
	if !prefs.GoogleCalendarConnected {
		t.Error("connect must set the connected flag")
	}
	if prefs.GoogleAccessToken == nil || *prefs.GoogleAccessToken != "access" {
		t.Error("access token not stored")
	}
	if prefs.GoogleRefreshToken == nil || *prefs.GoogleRefreshToken != "refresh" {
		t.Error("refresh token not stored")
	}

	prefs, err = u.DisconnectCalendar()
	if err != nil {
		t.Fatalf("DisconnectCalendar: %v", err)
	}
	if prefs.GoogleCalendarConnected {
		t.Error("disconnect must clear the connected flag")
	}
	if prefs.GoogleAccessToken != nil || prefs.GoogleRefreshToken != nil {
		t.Error("disconnect must clear both tokens")
	}
}

func TestConnectCalendarRequiresAccessToken(t *testing.T) {
	u := newUsecase()
	if _, err := u.ConnectCalendar("", "refresh"); !errors.Is(err, ErrInvalidPreferences) {
		t.Errorf("got %v, want ErrInvalidPreferences", err)
	}
}
