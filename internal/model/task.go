package model

import "time"

// Task is a single entry in today's plan. Once archived it never comes back;
// the row is deleted and a HistoryEntry takes its place.
type Task struct {
	ID         string `gorm:"primaryKey"`
	UserID     string `gorm:"index"`
	Text       string
	Completed  bool    `gorm:"default:false"`
	StartTime  *string // HH:MM, optional
	EndTime    *string // HH:MM, optional
	Importance *int    // 1 (low) .. 3 (high)
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
