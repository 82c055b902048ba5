package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"beetrack/internal/model"
	"beetrack/internal/repository"
)

// TaskService handles user-facing task CRUD. System tasks created by the
// cadence generator become ordinary tasks here once they exist.
type TaskService struct {
	tasks *repository.TaskRepository
	now   func() time.Time
}

func NewTaskService(tasks *repository.TaskRepository, now func() time.Time) *TaskService {
	if now == nil {
		now = time.Now
	}
	return &TaskService{tasks: tasks, now: now}
}

func (s *TaskService) ListTasks(ctx context.Context, userID uuid.UUID, f repository.TaskFilter, limit, offset int) ([]model.Task, error) {
	return s.tasks.List(ctx, userID, f, limit, offset)
}

func (s *TaskService) GetTask(ctx context.Context, userID, taskID uuid.UUID) (*model.Task, error) {
	return s.tasks.FindByID(ctx, userID, taskID)
}

// CreateTask creates a task for the user. An empty source defaults to
// manual, an empty priority to medium.
func (s *TaskService) CreateTask(ctx context.Context, userID uuid.UUID, task *model.Task) error {
	task.UserID = userID
	if task.Source == "" {
		task.Source = model.TaskSourceManual
	}
	if task.Priority == "" {
		task.Priority = model.TaskPriorityMedium
	}
	return s.tasks.Create(ctx, task)
}

// CompleteTask stamps a task completed now.
func (s *TaskService) CompleteTask(ctx context.Context, userID, taskID uuid.UUID) (*model.Task, error) {
	task, err := s.tasks.FindByID(ctx, userID, taskID)
	if err != nil {
		return nil, fmt.Errorf("complete task: %w", err)
	}
	now := s.now().UTC()
	task.CompletedAt = &now
	if err := s.tasks.Save(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// TaskPatch is the allow-listed set of task fields a user may change.
type TaskPatch struct {
	HiveID         *uuid.UUID
	ApiaryID       *uuid.UUID
	Title          *string
	Description    *string
	DueDate        *time.Time
	Recurring      *bool
	RecurrenceRule *string
	CompletedAt    *time.Time
	Priority       *model.TaskPriority
}

func (s *TaskService) UpdateTask(ctx context.Context, userID, taskID uuid.UUID, patch TaskPatch) (*model.Task, error) {
	task, err := s.tasks.FindByID(ctx, userID, taskID)
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	if patch.HiveID != nil {
		task.HiveID = patch.HiveID
	}
	if patch.ApiaryID != nil {
		task.ApiaryID = patch.ApiaryID
	}
	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = patch.Description
	}
	if patch.DueDate != nil {
		task.DueDate = patch.DueDate
	}
	if patch.Recurring != nil {
		task.Recurring = *patch.Recurring
	}
	if patch.RecurrenceRule != nil {
		task.RecurrenceRule = patch.RecurrenceRule
	}
	if patch.CompletedAt != nil {
		task.CompletedAt = patch.CompletedAt
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if err := s.tasks.Save(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// DeleteTask soft-deletes a task.
func (s *TaskService) DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error {
	task, err := s.tasks.FindByID(ctx, userID, taskID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return s.tasks.SoftDelete(ctx, task, s.now().UTC())
}
