package model

import (
	"time"

	"github.com/google/uuid"
)

type HiveType string

const (
	HiveTypeLangstroth HiveType = "langstroth"
	HiveTypeTopBar     HiveType = "top_bar"
	HiveTypeWarre      HiveType = "warre"
	HiveTypeFlow       HiveType = "flow"
	HiveTypeOther      HiveType = "other"
)

type HiveStatus string

const (
	HiveStatusActive   HiveStatus = "active"
	HiveStatusDead     HiveStatus = "dead"
	HiveStatusCombined HiveStatus = "combined"
	HiveStatusSold     HiveStatus = "sold"
)

type HiveSource string

const (
	HiveSourcePackage   HiveSource = "package"
	HiveSourceNuc       HiveSource = "nuc"
	HiveSourceSwarm     HiveSource = "swarm"
	HiveSourceSplit     HiveSource = "split"
	HiveSourcePurchased HiveSource = "purchased"
)

// Hive is a single colony within an apiary. Order drives the client's
// drag-to-sort position and travels on the wire as "position_order".
type Hive struct {
	Base
	ApiaryID         uuid.UUID   `gorm:"type:uuid;index;not null"`
	Name             string      `gorm:"size:255;not null"`
	HiveType         HiveType    `gorm:"size:20;default:langstroth;not null"`
	Status           HiveStatus  `gorm:"size:20;default:active;not null"`
	Source           *HiveSource `gorm:"size:20"`
	InstallationDate *time.Time  `gorm:"type:date"`
	Color            *string     `gorm:"size:50"`
	Order            *int        `gorm:"column:order"`
	Notes            *string
}
