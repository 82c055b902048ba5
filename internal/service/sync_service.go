package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"beetrack/internal/sync"
)

// SyncService fronts the sync engine and runs the cadence side effects the
// protocol requires around it.
type SyncService struct {
	engine  *sync.Engine
	cadence *CadenceService
	log     *slog.Logger
}

func NewSyncService(engine *sync.Engine, cadence *CadenceService, log *slog.Logger) *SyncService {
	if log == nil {
		log = slog.Default()
	}
	return &SyncService{engine: engine, cadence: cadence, log: log}
}

// Pull returns all changes since the client's watermark.
func (s *SyncService) Pull(ctx context.Context, userID uuid.UUID, lastPulledAt *int64) (*sync.PullResult, error) {
	return s.engine.Pull(ctx, userID, lastPulledAt)
}

// Push applies a client batch. When the batch created or updated hives, the
// cadence seeding that normally runs on hive creation is caught up here,
// since synced hives bypass that flow.
func (s *SyncService) Push(ctx context.Context, userID uuid.UUID, changes sync.Changes, lastPulledAt int64) (*sync.PushResult, error) {
	res, err := s.engine.Push(ctx, userID, changes, lastPulledAt)
	if err != nil {
		return nil, err
	}

	if res.HivesTouched {
		if err := s.catchUpCadences(ctx, userID); err != nil {
			// The push itself committed; cadence catch-up repeats on the
			// next push or sweep, so log and return success.
			s.log.Warn("cadence catch-up after push failed", "user_id", userID, "error", err)
		}
	}
	return res, nil
}

func (s *SyncService) catchUpCadences(ctx context.Context, userID uuid.UUID) error {
	h, err := s.cadence.ResolveHemisphere(ctx, userID)
	if err != nil {
		return err
	}
	if _, err := s.cadence.InitializeCadences(ctx, userID, h); err != nil {
		return err
	}
	if _, err := s.cadence.EnsureHiveCadences(ctx, userID); err != nil {
		return err
	}
	_, err = s.cadence.GenerateDueTasks(ctx, userID, time.Time{}, h)
	return err
}
