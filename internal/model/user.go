package model

import "gorm.io/datatypes"

// ExperienceLevel tunes which inspection templates a user sees.
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)

// User owns the whole record hierarchy. Preferences is a free-form JSON
// object; its "hemisphere" key ("north"/"south") overrides the hemisphere
// derived from apiary coordinates.
type User struct {
	Base
	Name            *string         `gorm:"size:255"`
	Email           string          `gorm:"size:255;uniqueIndex;not null"`
	Locale          *string         `gorm:"size:10"`
	ExperienceLevel ExperienceLevel `gorm:"size:20;default:beginner;not null"`
	Timezone        string          `gorm:"size:50;default:UTC;not null"`
	Preferences     datatypes.JSONMap
}
