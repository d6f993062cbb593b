package service

import (
	"context"

	"flush-planner/internal/model"
)

// TaskStore is the durable record store for active tasks. Updating or
// deleting a vanished id must be a silent no-op, not an error.
type TaskStore interface {
	Create(ctx context.Context, task *model.Task) error
	ListByUser(ctx context.Context, userID string) ([]model.Task, error)
	UpdateFields(ctx context.Context, userID, id string, text string, startTime, endTime *string, importance *int) error
	SetCompleted(ctx context.Context, userID, id string, completed bool) error
	Delete(ctx context.Context, userID, id string) error
	DeleteAllByUser(ctx context.Context, userID string) error
}

// HistoryStore is the append-only archive.
type HistoryStore interface {
	Create(ctx context.Context, entry *model.HistoryEntry) error
	ListPage(ctx context.Context, userID string, offset, limit int) ([]model.HistoryEntry, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
}

// FavoriteStore keeps reusable task templates.
type FavoriteStore interface {
	Create(ctx context.Context, favorite *model.FavoriteTask) error
	ListByUser(ctx context.Context, userID string) ([]model.FavoriteTask, error)
	FindByID(ctx context.Context, userID, id string) (*model.FavoriteTask, bool, error)
	FindByText(ctx context.Context, userID, text string) (*model.FavoriteTask, bool, error)
	Delete(ctx context.Context, userID, id string) error
}

// DayMarkerStore records the last date a user's session was open, so a
// missed midnight rollover can be caught at startup.
type DayMarkerStore interface {
	LastSeenDate(userID string) (string, error)
	SetLastSeenDate(userID, date string) error
}
