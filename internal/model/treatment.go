package model

import (
	"time"

	"github.com/google/uuid"
)

// Treatment records a medication or pest-control application on a hive.
type Treatment struct {
	Base
	HiveID             uuid.UUID `gorm:"type:uuid;index;not null"`
	TreatmentType      string    `gorm:"size:100;not null"`
	ProductName        *string   `gorm:"size:255"`
	Method             *string   `gorm:"size:100"`
	StartedAt          time.Time `gorm:"not null"`
	EndedAt            *time.Time
	Dosage             *string `gorm:"size:100"`
	EffectivenessNotes *string
	FollowUpDate       *time.Time `gorm:"type:date"`
}
