package domain

import "time"

// Subject represents a course used to tag and color-code tasks
type Subject struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Color     string    `json:"color" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
}
