package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"beetrack/internal/catalog"
	"beetrack/internal/model"
	"beetrack/internal/repository"
)

// lookaheadDays is how far ahead of their due date tasks are generated, so
// upcoming seasonal work shows on the client before it is due.
const lookaheadDays = 30

// CadenceService manages cadence subscriptions and generates the system
// tasks they are due for.
type CadenceService struct {
	db       *gorm.DB
	users    *repository.UserRepository
	apiaries *repository.ApiaryRepository
	hives    *repository.HiveRepository
	cadences *repository.CadenceRepository
	tasks    *repository.TaskRepository
	log      *slog.Logger
	now      func() time.Time
}

func NewCadenceService(
	db *gorm.DB,
	users *repository.UserRepository,
	apiaries *repository.ApiaryRepository,
	hives *repository.HiveRepository,
	cadences *repository.CadenceRepository,
	tasks *repository.TaskRepository,
	log *slog.Logger,
	now func() time.Time,
) *CadenceService {
	if log == nil {
		log = slog.Default()
	}
	if now == nil {
		now = time.Now
	}
	return &CadenceService{
		db:       db,
		users:    users,
		apiaries: apiaries,
		hives:    hives,
		cadences: cadences,
		tasks:    tasks,
		log:      log,
		now:      now,
	}
}

// ResolveHemisphere determines a user's hemisphere: an explicit preference
// wins, then the latitude of their first apiary with coordinates, then
// north.
func (s *CadenceService) ResolveHemisphere(ctx context.Context, userID uuid.UUID) (catalog.Hemisphere, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return catalog.North, fmt.Errorf("resolve hemisphere: %w", err)
	}
	if user != nil {
		if v, ok := user.Preferences["hemisphere"].(string); ok {
			if h := catalog.Hemisphere(v); h.Valid() {
				return h, nil
			}
		}
	}
	lat, err := s.apiaries.FirstLatitude(ctx, userID)
	if err != nil {
		return catalog.North, fmt.Errorf("resolve hemisphere: %w", err)
	}
	return catalog.DetectHemisphere(lat), nil
}

// ListCadences returns the user's cadence subscriptions.
func (s *CadenceService) ListCadences(ctx context.Context, userID uuid.UUID, f repository.CadenceFilter) ([]model.TaskCadence, error) {
	return s.cadences.List(ctx, userID, f)
}

// InitializeCadences seeds every user-level catalog template the user is
// not yet subscribed to. Recurring templates start due today so their first
// task generates immediately; seasonal templates start at their next
// occurrence. Idempotent: existing live subscriptions are skipped.
func (s *CadenceService) InitializeCadences(ctx context.Context, userID uuid.UUID, h catalog.Hemisphere) ([]model.TaskCadence, error) {
	existing, err := s.cadences.List(ctx, userID, repository.CadenceFilter{})
	if err != nil {
		return nil, fmt.Errorf("initialize cadences: %w", err)
	}
	seen := make(map[string]bool)
	for _, c := range existing {
		if c.HiveID == nil {
			seen[c.CadenceKey] = true
		}
	}

	today := catalog.DateOf(s.now())
	var created []model.TaskCadence
	for _, tpl := range catalog.UserTemplates() {
		if seen[tpl.Key] {
			continue
		}
		due := today
		if tpl.Category == catalog.Seasonal {
			next, ok := catalog.NextDue(tpl.Key, today, h, catalog.Overrides{})
			if !ok {
				continue
			}
			due = next
		}
		cadence := model.TaskCadence{
			UserID:      userID,
			CadenceKey:  tpl.Key,
			IsActive:    true,
			NextDueDate: &due,
		}
		if err := s.cadences.Create(ctx, &cadence); err != nil {
			return nil, fmt.Errorf("initialize cadences: %w", err)
		}
		created = append(created, cadence)
	}
	return created, nil
}

// InitializeHiveCadences seeds the hive-scoped templates for one hive, all
// due today. Idempotent per hive.
func (s *CadenceService) InitializeHiveCadences(ctx context.Context, userID, hiveID uuid.UUID) ([]model.TaskCadence, error) {
	existing, err := s.cadences.List(ctx, userID, repository.CadenceFilter{HiveID: &hiveID})
	if err != nil {
		return nil, fmt.Errorf("initialize hive cadences: %w", err)
	}
	seen := make(map[string]bool)
	for _, c := range existing {
		seen[c.CadenceKey] = true
	}

	today := catalog.DateOf(s.now())
	var created []model.TaskCadence
	for _, tpl := range catalog.HiveTemplates() {
		if seen[tpl.Key] {
			continue
		}
		due := today
		id := hiveID
		cadence := model.TaskCadence{
			UserID:      userID,
			HiveID:      &id,
			CadenceKey:  tpl.Key,
			IsActive:    true,
			NextDueDate: &due,
		}
		if err := s.cadences.Create(ctx, &cadence); err != nil {
			return nil, fmt.Errorf("initialize hive cadences: %w", err)
		}
		created = append(created, cadence)
	}
	return created, nil
}

// EnsureHiveCadences backfills hive-scoped cadences for every live hive
// that has none. Hives arriving through sync push bypass the creation flow
// that normally seeds them; this is the catch-up.
func (s *CadenceService) EnsureHiveCadences(ctx context.Context, userID uuid.UUID) ([]model.TaskCadence, error) {
	hiveIDs, err := s.hives.ActiveIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("ensure hive cadences: %w", err)
	}
	if len(hiveIDs) == 0 {
		return nil, nil
	}

	existing, err := s.cadences.List(ctx, userID, repository.CadenceFilter{})
	if err != nil {
		return nil, fmt.Errorf("ensure hive cadences: %w", err)
	}
	covered := make(map[uuid.UUID]bool)
	for _, c := range existing {
		if c.HiveID != nil {
			covered[*c.HiveID] = true
		}
	}

	var created []model.TaskCadence
	for _, hiveID := range hiveIDs {
		if covered[hiveID] {
			continue
		}
		batch, err := s.InitializeHiveCadences(ctx, userID, hiveID)
		if err != nil {
			return nil, err
		}
		created = append(created, batch...)
	}
	return created, nil
}

// CadencePatch is the allow-listed set of cadence fields a user may change.
type CadencePatch struct {
	IsActive           *bool
	CustomIntervalDays *int
	CustomSeasonMonth  *int
	CustomSeasonDay    *int
}

func (p CadencePatch) scheduleChanged() bool {
	return p.CustomIntervalDays != nil || p.CustomSeasonMonth != nil || p.CustomSeasonDay != nil
}

// UpdateCadence applies a patch to one of the user's cadences. When a
// scheduling override changes, next_due_date is recomputed from today.
func (s *CadenceService) UpdateCadence(ctx context.Context, userID, cadenceID uuid.UUID, patch CadencePatch) (*model.TaskCadence, error) {
	cadence, err := s.cadences.FindByID(ctx, userID, cadenceID)
	if err != nil {
		return nil, fmt.Errorf("update cadence: %w", err)
	}

	if patch.IsActive != nil {
		cadence.IsActive = *patch.IsActive
	}
	if patch.CustomIntervalDays != nil {
		cadence.CustomIntervalDays = patch.CustomIntervalDays
	}
	if patch.CustomSeasonMonth != nil {
		cadence.CustomSeasonMonth = patch.CustomSeasonMonth
	}
	if patch.CustomSeasonDay != nil {
		cadence.CustomSeasonDay = patch.CustomSeasonDay
	}

	if patch.scheduleChanged() {
		h, err := s.ResolveHemisphere(ctx, userID)
		if err != nil {
			return nil, err
		}
		if next, ok := catalog.NextDue(cadence.CadenceKey, catalog.DateOf(s.now()), h, overridesOf(cadence)); ok {
			cadence.NextDueDate = &next
		} else {
			cadence.NextDueDate = nil
		}
	}

	if err := s.cadences.Save(ctx, cadence); err != nil {
		return nil, fmt.Errorf("update cadence: %w", err)
	}
	return cadence, nil
}

// DeleteCadence soft-deletes one of the user's cadences.
func (s *CadenceService) DeleteCadence(ctx context.Context, userID, cadenceID uuid.UUID) error {
	cadence, err := s.cadences.FindByID(ctx, userID, cadenceID)
	if err != nil {
		return fmt.Errorf("delete cadence: %w", err)
	}
	return s.cadences.SoftDelete(ctx, cadence, s.now().UTC())
}

// GenerateDueTasks creates a task for every active cadence due within the
// lookahead window and advances each cadence past it, in one transaction.
// A zero asOf means today. The advance is computed from the cadence's own
// due date rather than asOf, so generating ahead of schedule keeps the
// spacing between occurrences correct.
func (s *CadenceService) GenerateDueTasks(ctx context.Context, userID uuid.UUID, asOf time.Time, h catalog.Hemisphere) ([]model.Task, error) {
	if asOf.IsZero() {
		asOf = s.now()
	}
	today := catalog.DateOf(asOf)
	horizon := today.AddDate(0, 0, lookaheadDays)

	var created []model.Task
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cadences, err := s.cadences.WithTx(tx).List(ctx, userID, repository.CadenceFilter{ActiveOnly: true})
		if err != nil {
			return err
		}

		hiveRepo := s.hives.WithTx(tx)
		taskRepo := s.tasks.WithTx(tx)
		cadenceRepo := s.cadences.WithTx(tx)

		type hiveInfo struct {
			name     string
			apiaryID *uuid.UUID
		}
		hiveCache := make(map[uuid.UUID]hiveInfo)

		for i := range cadences {
			cadence := &cadences[i]
			if cadence.NextDueDate == nil || cadence.NextDueDate.After(horizon) {
				continue
			}
			tpl, ok := catalog.TemplateByKey(cadence.CadenceKey)
			if !ok {
				s.log.Warn("unknown cadence key", "key", cadence.CadenceKey, "user_id", userID)
				continue
			}

			var hiveName string
			var apiaryID *uuid.UUID
			if cadence.HiveID != nil {
				info, cached := hiveCache[*cadence.HiveID]
				if !cached {
					name, aid, err := hiveRepo.Info(ctx, *cadence.HiveID)
					if errors.Is(err, gorm.ErrRecordNotFound) {
						name, aid = "Unknown hive", nil
					} else if err != nil {
						return err
					}
					info = hiveInfo{name: name, apiaryID: aid}
					hiveCache[*cadence.HiveID] = info
				}
				hiveName, apiaryID = info.name, info.apiaryID
			}

			task := buildTask(userID, cadence, tpl, hiveName, apiaryID)
			if err := taskRepo.Create(ctx, task); err != nil {
				return err
			}
			created = append(created, *task)

			s.advance(cadence, h)
			if err := cadenceRepo.Save(ctx, cadence); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("generate due tasks: %w", err)
	}

	if len(created) > 0 {
		s.log.Info("generated due tasks", "user_id", userID, "count", len(created))
	}
	return created, nil
}

func buildTask(userID uuid.UUID, cadence *model.TaskCadence, tpl catalog.Template, hiveName string, apiaryID *uuid.UUID) *model.Task {
	interval := tpl.IntervalDays
	if cadence.CustomIntervalDays != nil && *cadence.CustomIntervalDays > 0 {
		interval = *cadence.CustomIntervalDays
	}

	title := tpl.Title
	if hiveName != "" {
		title = fmt.Sprintf("%s: %s", hiveName, tpl.Title)
	}

	var rule *string
	if interval > 0 {
		r := fmt.Sprintf("every %d days", interval)
		rule = &r
	}

	desc := tpl.Description
	return &model.Task{
		UserID:         userID,
		HiveID:         cadence.HiveID,
		ApiaryID:       apiaryID,
		Title:          title,
		Description:    &desc,
		DueDate:        cadence.NextDueDate,
		Recurring:      tpl.Category == catalog.Recurring,
		RecurrenceRule: rule,
		Source:         model.TaskSourceSystem,
		Priority:       model.TaskPriority(tpl.Priority),
	}
}

// advance stamps last_generated_at and moves next_due_date to the following
// occurrence, computed from the current due date.
func (s *CadenceService) advance(cadence *model.TaskCadence, h catalog.Hemisphere) {
	now := s.now().UTC()
	cadence.LastGeneratedAt = &now
	from := catalog.DateOf(now)
	if cadence.NextDueDate != nil {
		from = *cadence.NextDueDate
	}
	if next, ok := catalog.NextDue(cadence.CadenceKey, from, h, overridesOf(cadence)); ok {
		cadence.NextDueDate = &next
	} else {
		cadence.NextDueDate = nil
	}
}

func overridesOf(c *model.TaskCadence) catalog.Overrides {
	return catalog.Overrides{
		IntervalDays: c.CustomIntervalDays,
		SeasonMonth:  c.CustomSeasonMonth,
		SeasonDay:    c.CustomSeasonDay,
	}
}
