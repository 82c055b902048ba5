package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"beetrack/internal/model"
)

// HiveRepository handles CRUD for hives. Ownership always goes through the
// apiary join since hives carry no user_id column.
type HiveRepository struct {
	db *gorm.DB
}

func NewHiveRepository(db *gorm.DB) *HiveRepository {
	return &HiveRepository{db: db}
}

// WithTx returns a copy bound to the given transaction.
func (r *HiveRepository) WithTx(tx *gorm.DB) *HiveRepository {
	return &HiveRepository{db: tx}
}

func (r *HiveRepository) Create(ctx context.Context, hive *model.Hive) error {
	if err := r.db.WithContext(ctx).Create(hive).Error; err != nil {
		return fmt.Errorf("create hive: %w", err)
	}
	return nil
}

func (r *HiveRepository) FindByID(ctx context.Context, userID, hiveID uuid.UUID) (*model.Hive, error) {
	var hive model.Hive
	if err := r.db.WithContext(ctx).
		Joins("JOIN apiaries ON apiaries.id = hives.apiary_id").
		Where("hives.id = ? AND hives.deleted_at IS NULL AND apiaries.user_id = ?", hiveID, userID).
		First(&hive).Error; err != nil {
		return nil, err
	}
	return &hive, nil
}

func (r *HiveRepository) ListByUser(ctx context.Context, userID uuid.UUID, apiaryID *uuid.UUID, limit, offset int) ([]model.Hive, error) {
	q := r.db.WithContext(ctx).
		Joins("JOIN apiaries ON apiaries.id = hives.apiary_id").
		Where("hives.deleted_at IS NULL AND apiaries.user_id = ?", userID)
	if apiaryID != nil {
		q = q.Where("hives.apiary_id = ?", *apiaryID)
	}
	var hives []model.Hive
	if err := q.Order("hives.created_at").Limit(limit).Offset(offset).Find(&hives).Error; err != nil {
		return nil, err
	}
	return hives, nil
}

func (r *HiveRepository) Save(ctx context.Context, hive *model.Hive) error {
	if err := r.db.WithContext(ctx).Save(hive).Error; err != nil {
		return fmt.Errorf("save hive: %w", err)
	}
	return nil
}

// ActiveIDs returns the ids of all non-deleted hives in the user's
// non-deleted apiaries.
func (r *HiveRepository) ActiveIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).Model(&model.Hive{}).
		Joins("JOIN apiaries ON apiaries.id = hives.apiary_id").
		Where("apiaries.user_id = ? AND hives.deleted_at IS NULL AND apiaries.deleted_at IS NULL", userID).
		Pluck("hives.id", &ids).Error; err != nil {
		return nil, fmt.Errorf("list active hive ids: %w", err)
	}
	return ids, nil
}

// Info returns the name and apiary id of a hive, for task generation.
func (r *HiveRepository) Info(ctx context.Context, hiveID uuid.UUID) (string, *uuid.UUID, error) {
	var hive model.Hive
	if err := r.db.WithContext(ctx).
		Select("name", "apiary_id").
		Where("id = ?", hiveID).
		First(&hive).Error; err != nil {
		return "", nil, err
	}
	apiaryID := hive.ApiaryID
	return hive.Name, &apiaryID, nil
}
