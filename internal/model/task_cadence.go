package model

import (
	"time"

	"github.com/google/uuid"
)

// TaskCadence is a user's subscription to one catalog template, optionally
// scoped to a single hive. NextDueDate is the sole driver of generation;
// nil means "never schedule". Live rows are unique on (user_id, cadence_key)
// for user-level cadences and (user_id, cadence_key, hive_id) for hive-level
// ones; the idempotent seeding paths enforce this by skipping live
// duplicates, so re-creation after a soft delete stays possible.
type TaskCadence struct {
	Base
	UserID             uuid.UUID  `gorm:"type:uuid;index;not null"`
	HiveID             *uuid.UUID `gorm:"type:uuid;index"`
	CadenceKey         string     `gorm:"size:100;index;not null"`
	IsActive           bool       `gorm:"default:true;not null"`
	LastGeneratedAt    *time.Time
	NextDueDate        *time.Time `gorm:"type:date"`
	CustomIntervalDays *int
	CustomSeasonMonth  *int
	CustomSeasonDay    *int
}
