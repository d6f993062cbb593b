package model

import "time"

// FavoriteTask is a reusable template from which new tasks are stamped.
// It has its own lifecycle and is not touched by task archival.
type FavoriteTask struct {
	ID         string `gorm:"primaryKey"`
	UserID     string `gorm:"index"`
	Text       string
	StartTime  *string
	EndTime    *string
	Importance *int
	CreatedAt  time.Time
}
