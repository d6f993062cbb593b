package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"flush-planner/internal/model"
)

// HistoryRepository appends and reads archived tasks. There is deliberately
// no update or delete: history is append-only.
type HistoryRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

func (r *HistoryRepository) Create(ctx context.Context, entry *model.HistoryEntry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("create history entry: %w", err)
	}
	return nil
}

// ListPage returns entries ordered by completion time, newest first.
func (r *HistoryRepository) ListPage(ctx context.Context, userID string, offset, limit int) ([]model.HistoryEntry, error) {
	var entries []model.HistoryEntry
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("completed_at DESC").
		Offset(offset).Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *HistoryRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.HistoryEntry{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count history: %w", err)
	}
	return count, nil
}
