package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"flush-planner/internal/model"
)

// TaskRepository handles CRUD for active tasks.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

func (r *TaskRepository) ListByUser(ctx context.Context, userID string) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// UpdateFields overwrites the four user-editable fields. Updating an id that
// no longer exists affects zero rows and is not an error.
func (r *TaskRepository) UpdateFields(ctx context.Context, userID, id string, text string, startTime, endTime *string, importance *int) error {
	updates := map[string]interface{}{
		"text":       text,
		"start_time": startTime,
		"end_time":   endTime,
		"importance": importance,
	}
	if err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("user_id = ? AND id = ?", userID, id).
		Updates(updates).Error; err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

func (r *TaskRepository) SetCompleted(ctx context.Context, userID, id string, completed bool) error {
	if err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("user_id = ? AND id = ?", userID, id).
		Update("completed", completed).Error; err != nil {
		return fmt.Errorf("toggle task: %w", err)
	}
	return nil
}

// Delete removes a task without writing history. Missing ids are a no-op.
func (r *TaskRepository) Delete(ctx context.Context, userID, id string) error {
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, id).
		Delete(&model.Task{}).Error; err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

func (r *TaskRepository) DeleteAllByUser(ctx context.Context, userID string) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Delete(&model.Task{}).Error; err != nil {
		return fmt.Errorf("delete tasks: %w", err)
	}
	return nil
}
