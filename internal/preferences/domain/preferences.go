package domain

import "time"

// UserPreferences is the per-user settings record. Exactly one exists
// per process; it is created lazily on first access.
type UserPreferences struct {
	ID                      string     `json:"id" gorm:"primaryKey"`
	GoogleCalendarConnected bool       `json:"googleCalendarConnected" gorm:"default:false"`
	GoogleAccessToken       *string    `json:"googleAccessToken,omitempty"`
	GoogleRefreshToken      *string    `json:"googleRefreshToken,omitempty"`
	NotificationsEnabled    bool       `json:"notificationsEnabled" gorm:"default:true"`
	StudyStreak             int        `json:"studyStreak" gorm:"default:0"`
	LastStudyDate           *time.Time `json:"lastStudyDate,omitempty"`
}
