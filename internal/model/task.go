package model

import (
	"time"

	"github.com/google/uuid"
)

type TaskSource string

const (
	TaskSourceManual        TaskSource = "manual"
	TaskSourceAIRecommended TaskSource = "ai_recommended"
	TaskSourceSystem        TaskSource = "system"
)

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityUrgent TaskPriority = "urgent"
)

// Task is a to-do item. System-sourced tasks are generated from cadences
// but carry no FK back to them; once created they are ordinary
// user-manageable records.
type Task struct {
	Base
	UserID         uuid.UUID  `gorm:"type:uuid;index;not null"`
	HiveID         *uuid.UUID `gorm:"type:uuid;index"`
	ApiaryID       *uuid.UUID `gorm:"type:uuid;index"`
	Title          string     `gorm:"size:255;not null"`
	Description    *string
	DueDate        *time.Time `gorm:"type:date"`
	Recurring      bool       `gorm:"default:false;not null"`
	RecurrenceRule *string    `gorm:"size:255"`
	Source         TaskSource `gorm:"size:20;default:manual;not null"`
	CompletedAt    *time.Time
	Priority       TaskPriority `gorm:"size:10;default:medium;not null"`
}
