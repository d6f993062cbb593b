package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"flush-planner/internal/model"
)

// FavoriteRepository manages reusable task templates.
type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) Create(ctx context.Context, favorite *model.FavoriteTask) error {
	if err := r.db.WithContext(ctx).Create(favorite).Error; err != nil {
		return fmt.Errorf("create favorite: %w", err)
	}
	return nil
}

func (r *FavoriteRepository) ListByUser(ctx context.Context, userID string) ([]model.FavoriteTask, error) {
	var favorites []model.FavoriteTask
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error; err != nil {
		return nil, err
	}
	return favorites, nil
}

func (r *FavoriteRepository) FindByID(ctx context.Context, userID, id string) (*model.FavoriteTask, bool, error) {
	var favorite model.FavoriteTask
	err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, id).First(&favorite).Error
	switch {
	case err == nil:
		return &favorite, true, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, false, nil
	default:
		return nil, false, fmt.Errorf("find favorite: %w", err)
	}
}

func (r *FavoriteRepository) FindByText(ctx context.Context, userID, text string) (*model.FavoriteTask, bool, error) {
	var favorite model.FavoriteTask
	err := r.db.WithContext(ctx).Where("user_id = ? AND text = ?", userID, text).First(&favorite).Error
	switch {
	case err == nil:
		return &favorite, true, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, false, nil
	default:
		return nil, false, fmt.Errorf("find favorite: %w", err)
	}
}

func (r *FavoriteRepository) Delete(ctx context.Context, userID, id string) error {
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, id).
		Delete(&model.FavoriteTask{}).Error; err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}
	return nil
}
