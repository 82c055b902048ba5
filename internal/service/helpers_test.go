package service

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"beetrack/internal/model"
	"beetrack/internal/repository"
	"beetrack/internal/sync"
)

// clock is an advanceable time source wired into both gorm's NowFunc and
// the services under test.
type clock struct{ t time.Time }

func newClock() *clock {
	return &clock{t: time.Date(2026, time.July, 20, 9, 0, 0, 0, time.UTC)}
}

func (c *clock) Now() time.Time          { return c.t }
func (c *clock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// Today returns the clock's calendar date at UTC midnight.
func (c *clock) Today() time.Time {
	y, m, d := c.t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type fixture struct {
	db       *gorm.DB
	clk      *clock
	users    *repository.UserRepository
	apiaries *repository.ApiaryRepository
	hives    *repository.HiveRepository
	cadences *repository.CadenceRepository
	tasks    *repository.TaskRepository

	cadence *CadenceService
	hive    *HiveService
	task    *TaskService
	sync    *SyncService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	clk := newClock()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		NowFunc: clk.Now,
	})
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	f := &fixture{
		db:       db,
		clk:      clk,
		users:    repository.NewUserRepository(db),
		apiaries: repository.NewApiaryRepository(db),
		hives:    repository.NewHiveRepository(db),
		cadences: repository.NewCadenceRepository(db),
		tasks:    repository.NewTaskRepository(db),
	}
	f.cadence = NewCadenceService(db, f.users, f.apiaries, f.hives, f.cadences, f.tasks, log, clk.Now)
	f.hive = NewHiveService(f.apiaries, f.hives, f.cadences, f.cadence, log, clk.Now)
	f.task = NewTaskService(f.tasks, clk.Now)
	f.sync = NewSyncService(sync.NewEngine(db, log, clk.Now), f.cadence, log)
	return f
}

func (f *fixture) seedUser(t *testing.T) *model.User {
	t.Helper()
	u := &model.User{Email: uuid.NewString() + "@example.com", Timezone: "UTC"}
	require.NoError(t, f.db.Create(u).Error)
	return u
}

func (f *fixture) seedApiary(t *testing.T, userID uuid.UUID) *model.Apiary {
	t.Helper()
	a := &model.Apiary{UserID: userID, Name: "Home yard"}
	require.NoError(t, f.db.Create(a).Error)
	return a
}

func (f *fixture) seedHive(t *testing.T, apiaryID uuid.UUID, name string) *model.Hive {
	t.Helper()
	h := &model.Hive{
		ApiaryID: apiaryID,
		Name:     name,
		HiveType: model.HiveTypeLangstroth,
		Status:   model.HiveStatusActive,
	}
	require.NoError(t, f.db.Create(h).Error)
	return h
}
