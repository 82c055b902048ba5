package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"beetrack/internal/repository"
)

// SchedulerService runs the daily generation sweep: one GenerateDueTasks
// pass per live user at a configured wall-clock time.
type SchedulerService struct {
	cron    *cron.Cron
	users   *repository.UserRepository
	cadence *CadenceService
	log     *slog.Logger
}

func NewSchedulerService(loc *time.Location, users *repository.UserRepository, cadence *CadenceService, log *slog.Logger) *SchedulerService {
	if log == nil {
		log = slog.Default()
	}
	return &SchedulerService{
		cron:    cron.New(cron.WithLocation(loc)),
		users:   users,
		cadence: cadence,
		log:     log,
	}
}

// ScheduleSweep registers the daily sweep at the given HH:MM time string.
func (s *SchedulerService) ScheduleSweep(timeStr string) (cron.EntryID, error) {
	spec, err := dailySpec(timeStr)
	if err != nil {
		return 0, err
	}
	return s.cron.AddFunc(spec, func() { s.Sweep(context.Background()) })
}

// Sweep generates due tasks for every live user. Per-user failures are
// logged and do not stop the rest of the sweep.
func (s *SchedulerService) Sweep(ctx context.Context) {
	ids, err := s.users.ListIDs(ctx)
	if err != nil {
		s.log.Error("sweep: list users", "error", err)
		return
	}
	var generated int
	for _, userID := range ids {
		h, err := s.cadence.ResolveHemisphere(ctx, userID)
		if err != nil {
			s.log.Warn("sweep: resolve hemisphere", "user_id", userID, "error", err)
			continue
		}
		tasks, err := s.cadence.GenerateDueTasks(ctx, userID, time.Time{}, h)
		if err != nil {
			s.log.Warn("sweep: generate", "user_id", userID, "error", err)
			continue
		}
		generated += len(tasks)
	}
	s.log.Info("sweep complete", "users", len(ids), "tasks", generated)
}

func (s *SchedulerService) Start() {
	s.cron.Start()
}

// Stop halts the scheduler and waits for a running sweep to finish.
func (s *SchedulerService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func dailySpec(timeStr string) (string, error) {
	parts := strings.Split(timeStr, ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid time %q, expected HH:MM", timeStr)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return "", fmt.Errorf("invalid hour in %q", timeStr)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return "", fmt.Errorf("invalid minute in %q", timeStr)
	}
	return fmt.Sprintf("%d %d * * *", minute, hour), nil
}
