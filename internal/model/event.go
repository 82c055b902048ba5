package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type EventType string

const (
	EventSwarm      EventType = "swarm"
	EventSplit      EventType = "split"
	EventCombine    EventType = "combine"
	EventRequeen    EventType = "requeen"
	EventFeed       EventType = "feed"
	EventWinterPrep EventType = "winter_prep"
)

// Event is a notable occurrence in a hive's life outside regular
// inspections. Details carries event-type-specific JSON.
type Event struct {
	Base
	HiveID     uuid.UUID `gorm:"type:uuid;index;not null"`
	EventType  EventType `gorm:"size:20;not null"`
	OccurredAt time.Time `gorm:"not null"`
	Details    datatypes.JSONMap
	Notes      *string
}
