package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"beetrack/internal/model"
)

// TaskRepository handles CRUD for tasks.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// WithTx returns a copy bound to the given transaction.
func (r *TaskRepository) WithTx(tx *gorm.DB) *TaskRepository {
	return &TaskRepository{db: tx}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

// TaskFilter narrows List results by hive or apiary.
type TaskFilter struct {
	HiveID   *uuid.UUID
	ApiaryID *uuid.UUID
}

func (r *TaskRepository) List(ctx context.Context, userID uuid.UUID, f TaskFilter, limit, offset int) ([]model.Task, error) {
	q := r.db.WithContext(ctx).
		Where("user_id = ? AND deleted_at IS NULL", userID)
	if f.HiveID != nil {
		q = q.Where("hive_id = ?", *f.HiveID)
	}
	if f.ApiaryID != nil {
		q = q.Where("apiary_id = ?", *f.ApiaryID)
	}
	var tasks []model.Task
	if err := q.Order("due_date, created_at").Limit(limit).Offset(offset).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, userID, taskID uuid.UUID) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ? AND deleted_at IS NULL", taskID, userID).
		First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) Save(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		return fmt.Errorf("save task: %w", err)
	}
	return nil
}

func (r *TaskRepository) SoftDelete(ctx context.Context, task *model.Task, at time.Time) error {
	task.DeletedAt = &at
	return r.Save(ctx, task)
}
