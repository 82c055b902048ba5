package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Inspection is a structured visit record for one hive. Observations and
// Weather are JSON objects whose shape depends on the experience template;
// the client schema stores them as JSON-encoded text columns.
type Inspection struct {
	Base
	HiveID             uuid.UUID `gorm:"type:uuid;index;not null"`
	InspectedAt        time.Time `gorm:"index;not null"`
	DurationMinutes    *int
	ExperienceTemplate ExperienceLevel `gorm:"size:20;default:beginner;not null"`
	Observations       datatypes.JSONMap
	Weather            datatypes.JSONMap
	Impression         *int
	Attention          *bool
	Reminder           *string
	ReminderDate       *time.Time
	AISummary          *string `gorm:"column:ai_summary"`
	Notes              *string
}
