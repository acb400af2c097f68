package repository

import (
	"testing"
	"time"

	"studyplan-backend/internal/preferences/domain"
)

func TestGetCreatesDefaultLazily(t *testing.T) {
	repo := NewMemoryPreferencesRepository()

	prefs, err := repo.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if prefs == nil {
		t.Fatal("Get must never return nil")
	}
	if prefs.GoogleCalendarConnected {
		t.Error("fresh preferences must not be calendar-connected")
	}
	if prefs.StudyStreak != 0 {
		t.Errorf("fresh study streak = %d, want 0", prefs.StudyStreak)
	}
	if !prefs.NotificationsEnabled {
		t.Error("notifications default to enabled")
	}
	if prefs.ID == "" {
		t.Error("default record must have an id")
	}
}

func TestGetReturnsSameSingleton(t *testing.T) {
	repo := NewMemoryPreferencesRepository()

	first, err := repo.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	second, err := repo.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("two reads returned different records: %s vs %s", first.ID, second.ID)
	}
}

func TestUpdateMergesIntoSingleton(t *testing.T) {
	repo := NewMemoryPreferencesRepository()

	access := "access-token"
	refresh := "refresh-token"
	updated, err := repo.Update(func(p *domain.UserPreferences) {
		p.GoogleCalendarConnected = true
		p.GoogleAccessToken = &access
		p.GoogleRefreshToken = &refresh
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !updated.GoogleCalendarConnected {
		t.Error("connected flag not applied")
	}
	if updated.GoogleAccessToken == nil || *updated.GoogleAccessToken != access {
		t.Error("access token not applied")
	}
	// Untouched fields keep their defaults.
	if !updated.NotificationsEnabled {
		t.Error("notifications flag changed by unrelated patch")
	}

	again, err := repo.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !again.GoogleCalendarConnected || again.ID != updated.ID {
		t.Error("update did not persist on the singleton")
	}
}

func TestUpdateCreatesRecordIfAbsent(t *testing.T) {
	repo := NewMemoryPreferencesRepository()

	streakDate := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	updated, err := repo.Update(func(p *domain.UserPreferences) {
		p.StudyStreak = 3
		p.LastStudyDate = &streakDate
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.StudyStreak != 3 {
		t.Errorf("streak = %d, want 3", updated.StudyStreak)
	}
	if updated.ID == "" {
		t.Error("update on a fresh store must create the singleton")
	}
}
