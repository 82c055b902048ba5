package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"beetrack/internal/model"
)

// ApiaryRepository handles CRUD for apiaries.
type ApiaryRepository struct {
	db *gorm.DB
}

func NewApiaryRepository(db *gorm.DB) *ApiaryRepository {
	return &ApiaryRepository{db: db}
}

func (r *ApiaryRepository) Create(ctx context.Context, apiary *model.Apiary) error {
	if err := r.db.WithContext(ctx).Create(apiary).Error; err != nil {
		return fmt.Errorf("create apiary: %w", err)
	}
	return nil
}

func (r *ApiaryRepository) FindByID(ctx context.Context, userID, apiaryID uuid.UUID) (*model.Apiary, error) {
	var apiary model.Apiary
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ? AND deleted_at IS NULL", apiaryID, userID).
		First(&apiary).Error; err != nil {
		return nil, err
	}
	return &apiary, nil
}

func (r *ApiaryRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.Apiary, error) {
	var apiaries []model.Apiary
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND deleted_at IS NULL", userID).
		Order("created_at").
		Limit(limit).Offset(offset).
		Find(&apiaries).Error; err != nil {
		return nil, err
	}
	return apiaries, nil
}

func (r *ApiaryRepository) Save(ctx context.Context, apiary *model.Apiary) error {
	if err := r.db.WithContext(ctx).Save(apiary).Error; err != nil {
		return fmt.Errorf("save apiary: %w", err)
	}
	return nil
}

func (r *ApiaryRepository) SoftDelete(ctx context.Context, apiary *model.Apiary, at time.Time) error {
	apiary.DeletedAt = &at
	return r.Save(ctx, apiary)
}

// FirstLatitude returns the latitude of the user's first non-deleted apiary
// that has coordinates, or nil when none do.
func (r *ApiaryRepository) FirstLatitude(ctx context.Context, userID uuid.UUID) (*float64, error) {
	var apiary model.Apiary
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND deleted_at IS NULL AND latitude IS NOT NULL", userID).
		Order("created_at").
		First(&apiary).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("first apiary latitude: %w", err)
	}
	return apiary.Latitude, nil
}
