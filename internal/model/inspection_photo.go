package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// InspectionPhoto references an object-store image attached to an
// inspection. Photos are the one table that may be hard-deleted, but only
// through the dedicated photo-delete path; sync soft-deletes like all others.
type InspectionPhoto struct {
	Base
	InspectionID uuid.UUID `gorm:"type:uuid;index;not null"`
	S3Key        string    `gorm:"size:512;not null"`
	Caption      *string
	AIAnalysis   datatypes.JSONMap `gorm:"column:ai_analysis"`
	URL          *string           `gorm:"size:1024"`
	UploadedAt   time.Time         `gorm:"not null"`
}
