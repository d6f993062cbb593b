package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"flush-planner/internal/model"
)

// FavoriteService manages reusable task templates and stamps new active
// tasks from them.
type FavoriteService struct {
	store   FavoriteStore
	planner *Planner
	now     func() time.Time
	userID  string
}

func NewFavoriteService(store FavoriteStore, planner *Planner, userID string) *FavoriteService {
	return &FavoriteService{
		store:   store,
		planner: planner,
		now:     time.Now,
		userID:  userID,
	}
}

// Add saves a new template. No two templates for the same user may share
// the same text; the check happens here, not in storage.
func (s *FavoriteService) Add(ctx context.Context, text string, startTime, endTime *string, importance *int) (model.FavoriteTask, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return model.FavoriteTask{}, ErrEmptyText
	}

	_, exists, err := s.store.FindByText(ctx, s.userID, trimmed)
	if err != nil {
		return model.FavoriteTask{}, err
	}
	if exists {
		return model.FavoriteTask{}, ErrDuplicateFavorite
	}

	favorite := model.FavoriteTask{
		ID:         uuid.NewString(),
		UserID:     s.userID,
		Text:       trimmed,
		StartTime:  startTime,
		EndTime:    endTime,
		Importance: importance,
		CreatedAt:  s.now(),
	}
	if err := s.store.Create(ctx, &favorite); err != nil {
		return model.FavoriteTask{}, err
	}
	return favorite, nil
}

func (s *FavoriteService) List(ctx context.Context) ([]model.FavoriteTask, error) {
	return s.store.ListByUser(ctx, s.userID)
}

func (s *FavoriteService) Remove(ctx context.Context, id string) error {
	return s.store.Delete(ctx, s.userID, id)
}

// Use stamps a new active task from a template. The template's fields are
// copied; no link between the two is kept afterwards.
func (s *FavoriteService) Use(ctx context.Context, id string) (model.Task, error) {
	favorite, found, err := s.store.FindByID(ctx, s.userID, id)
	if err != nil {
		return model.Task{}, err
	}
	if !found {
		return model.Task{}, ErrFavoriteNotFound
	}
	return s.planner.Add(ctx, favorite.Text, favorite.StartTime, favorite.EndTime, favorite.Importance)
}
