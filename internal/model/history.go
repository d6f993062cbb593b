package model

import "time"

// HistoryEntry is the immutable archival record of a task's disposition.
// Completed is true when the user flushed the task themselves and false when
// the daily rollover or the overdue sweep archived it still unfinished.
type HistoryEntry struct {
	ID             string `gorm:"primaryKey"`
	UserID         string `gorm:"index"`
	Text           string
	CompletedAt    time.Time `gorm:"index"`
	StartTime      *string
	EndTime        *string
	Importance     *int
	OriginalTaskID string // informational back-reference, task may be long gone
	Completed      bool
}
