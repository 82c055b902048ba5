package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base carries the columns shared by every synced table.
//
// DeletedAt is a plain nullable timestamp rather than gorm.DeletedAt: the
// sync engine has to see tombstones in its ordinary queries, so soft-delete
// filtering is always spelled out explicitly in the repositories.
type Base struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time  `gorm:"index"`
	DeletedAt *time.Time `gorm:"index"`
}

// BeforeCreate assigns a fresh UUID unless the caller supplied one
// (sync push keeps the client-generated id).
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// Meta exposes the shared columns to the sync engine.
func (b *Base) Meta() *Base { return b }

// Deleted reports whether the row is a soft-delete tombstone.
func (b *Base) Deleted() bool { return b.DeletedAt != nil }
