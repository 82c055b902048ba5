package model

import (
	"time"

	"github.com/google/uuid"
)

type QueenOrigin string

const (
	QueenOriginPurchased QueenOrigin = "purchased"
	QueenOriginRaised    QueenOrigin = "raised"
	QueenOriginSwarm     QueenOrigin = "swarm"
)

type QueenStatus string

const (
	QueenStatusPresent    QueenStatus = "present"
	QueenStatusMissing    QueenStatus = "missing"
	QueenStatusSuperseded QueenStatus = "superseded"
	QueenStatusFailed     QueenStatus = "failed"
)

// Queen tracks the current (or most recent) queen of a hive. A hive has at
// most one live queen row; history is kept through soft deletes.
type Queen struct {
	Base
	HiveID         uuid.UUID `gorm:"type:uuid;index;not null"`
	MarkingColor   *string   `gorm:"size:50"`
	MarkingYear    *int
	Origin         *QueenOrigin `gorm:"size:20"`
	Status         QueenStatus  `gorm:"size:20;default:present;not null"`
	Race           *string      `gorm:"size:100"`
	Quality        *int
	Fertilized     bool `gorm:"default:false;not null"`
	Clipped        bool `gorm:"default:false;not null"`
	BirthDate      *time.Time `gorm:"type:date"`
	IntroducedDate *time.Time `gorm:"type:date"`
	ReplacedDate   *time.Time `gorm:"type:date"`
	Notes          *string
}
