package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"beetrack/internal/model"
	"beetrack/internal/repository"
)

// HiveService handles the hive lifecycle and the cadence seeding that hangs
// off it.
type HiveService struct {
	apiaries *repository.ApiaryRepository
	hives    *repository.HiveRepository
	cadences *repository.CadenceRepository
	cadence  *CadenceService
	log      *slog.Logger
	now      func() time.Time
}

func NewHiveService(
	apiaries *repository.ApiaryRepository,
	hives *repository.HiveRepository,
	cadences *repository.CadenceRepository,
	cadence *CadenceService,
	log *slog.Logger,
	now func() time.Time,
) *HiveService {
	if log == nil {
		log = slog.Default()
	}
	if now == nil {
		now = time.Now
	}
	return &HiveService{
		apiaries: apiaries,
		hives:    hives,
		cadences: cadences,
		cadence:  cadence,
		log:      log,
		now:      now,
	}
}

// CreateHive creates a hive in one of the user's apiaries, seeds the
// user-level cadences on the user's first hive, seeds the hive-scoped
// cadences, and generates whatever tasks just became due.
func (s *HiveService) CreateHive(ctx context.Context, userID uuid.UUID, hive *model.Hive) error {
	if _, err := s.apiaries.FindByID(ctx, userID, hive.ApiaryID); err != nil {
		return fmt.Errorf("create hive: apiary lookup: %w", err)
	}
	if err := s.hives.Create(ctx, hive); err != nil {
		return err
	}

	h, err := s.cadence.ResolveHemisphere(ctx, userID)
	if err != nil {
		return err
	}

	existing, err := s.cadences.List(ctx, userID, repository.CadenceFilter{})
	if err != nil {
		return fmt.Errorf("create hive: %w", err)
	}
	if len(existing) == 0 {
		if _, err := s.cadence.InitializeCadences(ctx, userID, h); err != nil {
			return err
		}
	}

	if _, err := s.cadence.InitializeHiveCadences(ctx, userID, hive.ID); err != nil {
		return err
	}
	if _, err := s.cadence.GenerateDueTasks(ctx, userID, time.Time{}, h); err != nil {
		return err
	}
	return nil
}

func (s *HiveService) GetHive(ctx context.Context, userID, hiveID uuid.UUID) (*model.Hive, error) {
	return s.hives.FindByID(ctx, userID, hiveID)
}

func (s *HiveService) ListHives(ctx context.Context, userID uuid.UUID, apiaryID *uuid.UUID, limit, offset int) ([]model.Hive, error) {
	return s.hives.ListByUser(ctx, userID, apiaryID, limit, offset)
}

// HivePatch is the allow-listed set of hive fields a user may change.
type HivePatch struct {
	Name             *string
	HiveType         *model.HiveType
	Status           *model.HiveStatus
	Source           *model.HiveSource
	InstallationDate *time.Time
	Color            *string
	Order            *int
	Notes            *string
}

func (s *HiveService) UpdateHive(ctx context.Context, userID, hiveID uuid.UUID, patch HivePatch) (*model.Hive, error) {
	hive, err := s.hives.FindByID(ctx, userID, hiveID)
	if err != nil {
		return nil, fmt.Errorf("update hive: %w", err)
	}
	if patch.Name != nil {
		hive.Name = *patch.Name
	}
	if patch.HiveType != nil {
		hive.HiveType = *patch.HiveType
	}
	if patch.Status != nil {
		hive.Status = *patch.Status
	}
	if patch.Source != nil {
		hive.Source = patch.Source
	}
	if patch.InstallationDate != nil {
		hive.InstallationDate = patch.InstallationDate
	}
	if patch.Color != nil {
		hive.Color = patch.Color
	}
	if patch.Order != nil {
		hive.Order = patch.Order
	}
	if patch.Notes != nil {
		hive.Notes = patch.Notes
	}
	if err := s.hives.Save(ctx, hive); err != nil {
		return nil, err
	}
	return hive, nil
}

// DeleteHive soft-deletes a hive together with its cadences. The FK cascade
// only fires on hard deletes, so the cadence sweep is explicit.
func (s *HiveService) DeleteHive(ctx context.Context, userID, hiveID uuid.UUID) error {
	hive, err := s.hives.FindByID(ctx, userID, hiveID)
	if err != nil {
		return fmt.Errorf("delete hive: %w", err)
	}
	now := s.now().UTC()
	hive.DeletedAt = &now
	if err := s.hives.Save(ctx, hive); err != nil {
		return err
	}
	return s.cadences.SoftDeleteByHive(ctx, hive.ID, now)
}
