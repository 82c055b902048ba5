package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"beetrack/internal/model"
)

// CadenceRepository manages task cadence subscriptions.
type CadenceRepository struct {
	db *gorm.DB
}

func NewCadenceRepository(db *gorm.DB) *CadenceRepository {
	return &CadenceRepository{db: db}
}

// WithTx returns a copy bound to the given transaction.
func (r *CadenceRepository) WithTx(tx *gorm.DB) *CadenceRepository {
	return &CadenceRepository{db: tx}
}

// CadenceFilter narrows List results. HiveID filters to one hive's
// cadences; ActiveOnly drops paused ones.
type CadenceFilter struct {
	ActiveOnly bool
	HiveID     *uuid.UUID
}

// List returns the user's non-deleted cadences, newest last.
func (r *CadenceRepository) List(ctx context.Context, userID uuid.UUID, f CadenceFilter) ([]model.TaskCadence, error) {
	q := r.db.WithContext(ctx).
		Where("user_id = ? AND deleted_at IS NULL", userID)
	if f.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}
	if f.HiveID != nil {
		q = q.Where("hive_id = ?", *f.HiveID)
	}
	var cadences []model.TaskCadence
	if err := q.Order("created_at").Find(&cadences).Error; err != nil {
		return nil, fmt.Errorf("list cadences: %w", err)
	}
	return cadences, nil
}

func (r *CadenceRepository) FindByID(ctx context.Context, userID, cadenceID uuid.UUID) (*model.TaskCadence, error) {
	var cadence model.TaskCadence
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ? AND deleted_at IS NULL", cadenceID, userID).
		First(&cadence).Error; err != nil {
		return nil, err
	}
	return &cadence, nil
}

func (r *CadenceRepository) Create(ctx context.Context, cadence *model.TaskCadence) error {
	if err := r.db.WithContext(ctx).Create(cadence).Error; err != nil {
		return fmt.Errorf("create cadence: %w", err)
	}
	return nil
}

func (r *CadenceRepository) Save(ctx context.Context, cadence *model.TaskCadence) error {
	if err := r.db.WithContext(ctx).Save(cadence).Error; err != nil {
		return fmt.Errorf("save cadence: %w", err)
	}
	return nil
}

func (r *CadenceRepository) SoftDelete(ctx context.Context, cadence *model.TaskCadence, at time.Time) error {
	cadence.DeletedAt = &at
	return r.Save(ctx, cadence)
}

// SoftDeleteByHive tombstones all live cadences of a hive. The FK cascade
// only fires on hard deletes, so soft-deleting a hive requires this
// explicit sweep.
func (r *CadenceRepository) SoftDeleteByHive(ctx context.Context, hiveID uuid.UUID, at time.Time) error {
	err := r.db.WithContext(ctx).Model(&model.TaskCadence{}).
		Where("hive_id = ? AND deleted_at IS NULL", hiveID).
		Updates(map[string]any{"deleted_at": at, "updated_at": at}).Error
	if err != nil {
		return fmt.Errorf("soft delete hive cadences: %w", err)
	}
	return nil
}
