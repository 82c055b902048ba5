package model

import (
	"time"

	"github.com/google/uuid"
)

// Apiary is a physical bee yard. Coordinates are optional and, when set,
// also feed hemisphere detection for seasonal scheduling.
type Apiary struct {
	Base
	UserID      uuid.UUID `gorm:"type:uuid;index;not null"`
	Name        string    `gorm:"size:255;not null"`
	Latitude    *float64
	Longitude   *float64
	City        *string `gorm:"size:255"`
	CountryCode *string `gorm:"size:10"`
	HexColor    *string `gorm:"size:7"`
	Notes       *string
	ArchivedAt  *time.Time
}
