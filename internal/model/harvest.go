package model

import (
	"time"

	"github.com/google/uuid"
)

// Harvest records honey taken from a hive.
type Harvest struct {
	Base
	HiveID          uuid.UUID `gorm:"type:uuid;index;not null"`
	HarvestedAt     time.Time `gorm:"not null"`
	WeightKg        *float64
	MoisturePercent *float64
	HoneyType       *string `gorm:"size:100"`
	FlavorNotes     *string
	Color           *string `gorm:"size:50"`
	FramesHarvested *int
	Notes           *string
}
