package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"beetrack/internal/catalog"
	"beetrack/internal/model"
	"beetrack/internal/repository"
)

func TestInitializeCadencesIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := f.seedUser(t)

	created, err := f.cadence.InitializeCadences(ctx, user.ID, catalog.North)
	require.NoError(t, err)
	assert.Len(t, created, len(catalog.UserTemplates()))

	byKey := make(map[string]model.TaskCadence)
	for _, c := range created {
		assert.Nil(t, c.HiveID)
		assert.True(t, c.IsActive)
		byKey[c.CadenceKey] = c
	}

	// Recurring user cadences start due immediately.
	equip := byKey["equipment_check"]
	require.NotNil(t, equip.NextDueDate)
	assert.Equal(t, f.clk.Today(), *equip.NextDueDate)

	// Seasonal cadences start at their next occurrence (clock is July 20,
	// so next March 15 is in the following year).
	spring := byKey["spring_assessment"]
	require.NotNil(t, spring.NextDueDate)
	assert.Equal(t, time.Date(2027, time.March, 15, 0, 0, 0, 0, time.UTC), *spring.NextDueDate)

	again, err := f.cadence.InitializeCadences(ctx, user.ID, catalog.North)
	require.NoError(t, err)
	assert.Empty(t, again)

	all, err := f.cadences.List(ctx, user.ID, repository.CadenceFilter{})
	require.NoError(t, err)
	assert.Len(t, all, len(created))
}

func TestInitializeCadencesSouthernHemisphere(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := f.seedUser(t)

	created, err := f.cadence.InitializeCadences(ctx, user.ID, catalog.South)
	require.NoError(t, err)

	for _, c := range created {
		if c.CadenceKey != "spring_assessment" {
			continue
		}
		// March 15 shifts to September 15, still ahead of the July clock.
		require.NotNil(t, c.NextDueDate)
		assert.Equal(t, time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC), *c.NextDueDate)
	}
}

func TestInitializeHiveCadences(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := f.seedUser(t)
	apiary := f.seedApiary(t, user.ID)
	hive := f.seedHive(t, apiary.ID, "Hive 1")

	created, err := f.cadence.InitializeHiveCadences(ctx, user.ID, hive.ID)
	require.NoError(t, err)
	require.Len(t, created, 2)
	for _, c := range created {
		require.NotNil(t, c.HiveID)
		assert.Equal(t, hive.ID, *c.HiveID)
		require.NotNil(t, c.NextDueDate)
		assert.Equal(t, f.clk.Today(), *c.NextDueDate)
	}

	again, err := f.cadence.InitializeHiveCadences(ctx, user.ID, hive.ID)
	require.NoError(t, err)
	assert.Empty(t, again)
}

func TestEnsureHiveCadencesBackfillsMissingHives(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := f.seedUser(t)
	apiary := f.seedApiary(t, user.ID)
	covered := f.seedHive(t, apiary.ID, "Covered")
	missing := f.seedHive(t, apiary.ID, "Missing")

	_, err := f.cadence.InitializeHiveCadences(ctx, user.ID, covered.ID)
	require.NoError(t, err)

	created, err := f.cadence.EnsureHiveCadences(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, created, 2)
	for _, c := range created {
		assert.Equal(t, missing.ID, *c.HiveID)
	}

	again, err := f.cadence.EnsureHiveCadences(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, again)
}

func TestResolveHemisphere(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Explicit preference wins over apiary coordinates.
	prefUser := &model.User{
		Email:       "pref@example.com",
		Timezone:    "UTC",
		Preferences: datatypes.JSONMap{"hemisphere": "south"},
	}
	require.NoError(t, f.db.Create(prefUser).Error)
	lat := 48.2
	require.NoError(t, f.db.Create(&model.Apiary{UserID: prefUser.ID, Name: "North yard", Latitude: &lat}).Error)

	h, err := f.cadence.ResolveHemisphere(ctx, prefUser.ID)
	require.NoError(t, err)
	assert.Equal(t, catalog.South, h)

	// No preference: first apiary latitude decides.
	latUser := f.seedUser(t)
	southLat := -33.8
	require.NoError(t, f.db.Create(&model.Apiary{UserID: latUser.ID, Name: "South yard", Latitude: &southLat}).Error)
	h, err = f.cadence.ResolveHemisphere(ctx, latUser.ID)
	require.NoError(t, err)
	assert.Equal(t, catalog.South, h)

	// Nothing known: default north.
	bare := f.seedUser(t)
	h, err = f.cadence.ResolveHemisphere(ctx, bare.ID)
	require.NoError(t, err)
	assert.Equal(t, catalog.North, h)
}

func TestUpdateCadenceRecomputesSchedule(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := f.seedUser(t)

	created, err := f.cadence.InitializeCadences(ctx, user.ID, catalog.North)
	require.NoError(t, err)
	var equip model.TaskCadence
	for _, c := range created {
		if c.CadenceKey == "equipment_check" {
			equip = c
		}
	}

	// Toggling activity alone leaves the schedule untouched.
	off := false
	updated, err := f.cadence.UpdateCadence(ctx, user.ID, equip.ID, CadencePatch{IsActive: &off})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.WithinDuration(t, f.clk.Today(), *updated.NextDueDate, time.Second)

	// A custom interval recomputes next_due_date from today.
	ten := 10
	updated, err = f.cadence.UpdateCadence(ctx, user.ID, equip.ID, CadencePatch{CustomIntervalDays: &ten})
	require.NoError(t, err)
	require.NotNil(t, updated.CustomIntervalDays)
	assert.WithinDuration(t, f.clk.Today().AddDate(0, 0, 10), *updated.NextDueDate, time.Second)
}

func TestDeleteCadence(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := f.seedUser(t)

	created, err := f.cadence.InitializeCadences(ctx, user.ID, catalog.North)
	require.NoError(t, err)

	require.NoError(t, f.cadence.DeleteCadence(ctx, user.ID, created[0].ID))

	remaining, err := f.cadences.List(ctx, user.ID, repository.CadenceFilter{})
	require.NoError(t, err)
	assert.Len(t, remaining, len(created)-1)

	// Re-initialization may recreate the deleted subscription.
	again, err := f.cadence.InitializeCadences(ctx, user.ID, catalog.North)
	require.NoError(t, err)
	require.Len(t, again, 1)
	assert.Equal(t, created[0].CadenceKey, again[0].CadenceKey)
}

func TestGenerateDueTasks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := f.seedUser(t)
	apiary := f.seedApiary(t, user.ID)
	hive := f.seedHive(t, apiary.ID, "Hive 1")

	_, err := f.cadence.InitializeCadences(ctx, user.ID, catalog.North)
	require.NoError(t, err)
	_, err = f.cadence.InitializeHiveCadences(ctx, user.ID, hive.ID)
	require.NoError(t, err)

	tasks, err := f.cadence.GenerateDueTasks(ctx, user.ID, time.Time{}, catalog.North)
	require.NoError(t, err)
	require.Len(t, tasks, 3)

	byTitle := make(map[string]model.Task)
	for _, task := range tasks {
		assert.Equal(t, model.TaskSourceSystem, task.Source)
		assert.True(t, task.Recurring)
		require.NotNil(t, task.DueDate)
		assert.WithinDuration(t, f.clk.Today(), *task.DueDate, time.Second)
		byTitle[task.Title] = task
	}

	insp, ok := byTitle["Hive 1: Regular hive inspection"]
	require.True(t, ok, "hive-scoped task titles carry the hive name")
	assert.Equal(t, model.TaskPriorityMedium, insp.Priority)
	require.NotNil(t, insp.RecurrenceRule)
	assert.Equal(t, "every 14 days", *insp.RecurrenceRule)
	require.NotNil(t, insp.HiveID)
	assert.Equal(t, hive.ID, *insp.HiveID)
	require.NotNil(t, insp.ApiaryID)
	assert.Equal(t, apiary.ID, *insp.ApiaryID)
}

func TestGenerateAdvancesFromDueDateNotToday(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := f.seedUser(t)
	apiary := f.seedApiary(t, user.ID)
	hive := f.seedHive(t, apiary.ID, "Hive 1")

	// A cadence due in ten days sits inside the lookahead window.
	due := f.clk.Today().AddDate(0, 0, 10)
	hiveID := hive.ID
	cadence := model.TaskCadence{
		UserID:      user.ID,
		HiveID:      &hiveID,
		CadenceKey:  "regular_inspection",
		IsActive:    true,
		NextDueDate: &due,
	}
	require.NoError(t, f.cadences.Create(ctx, &cadence))

	tasks, err := f.cadence.GenerateDueTasks(ctx, user.ID, time.Time{}, catalog.North)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.WithinDuration(t, due, *tasks[0].DueDate, time.Second)

	fresh, err := f.cadences.FindByID(ctx, user.ID, cadence.ID)
	require.NoError(t, err)
	require.NotNil(t, fresh.NextDueDate)
	// Advanced from the due date itself: day 10 + 14, not today + 14.
	assert.WithinDuration(t, due.AddDate(0, 0, 14), *fresh.NextDueDate, time.Second)
	require.NotNil(t, fresh.LastGeneratedAt)
}

func TestGenerateSkipsInactiveAndUnknown(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := f.seedUser(t)

	today := f.clk.Today()
	inactive := model.TaskCadence{
		UserID:      user.ID,
		CadenceKey:  "equipment_check",
		IsActive:    false,
		NextDueDate: &today,
	}
	require.NoError(t, f.cadences.Create(ctx, &inactive))

	legacy := model.TaskCadence{
		UserID:      user.ID,
		CadenceKey:  "retired_template",
		IsActive:    true,
		NextDueDate: &today,
	}
	require.NoError(t, f.cadences.Create(ctx, &legacy))

	tasks, err := f.cadence.GenerateDueTasks(ctx, user.ID, time.Time{}, catalog.North)
	require.NoError(t, err)
	assert.Empty(t, tasks)

	// The unknown-key cadence is left untouched for inspection.
	fresh, err := f.cadences.FindByID(ctx, user.ID, legacy.ID)
	require.NoError(t, err)
	assert.Nil(t, fresh.LastGeneratedAt)
	assert.WithinDuration(t, today, *fresh.NextDueDate, time.Second)
}

func TestGenerateRepeatedCallsWalkTheWindow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := f.seedUser(t)
	apiary := f.seedApiary(t, user.ID)
	hive := f.seedHive(t, apiary.ID, "Hive 1")

	_, err := f.cadence.InitializeHiveCadences(ctx, user.ID, hive.ID)
	require.NoError(t, err)

	first, err := f.cadence.GenerateDueTasks(ctx, user.ID, time.Time{}, catalog.North)
	require.NoError(t, err)
	require.Len(t, first, 2)

	// Both cadences advanced inside the 30-day window, so a second pass
	// pre-generates the next occurrences.
	second, err := f.cadence.GenerateDueTasks(ctx, user.ID, time.Time{}, catalog.North)
	require.NoError(t, err)
	require.Len(t, second, 2)

	dues := []string{
		second[0].DueDate.Format("2006-01-02"),
		second[1].DueDate.Format("2006-01-02"),
	}
	assert.ElementsMatch(t, []string{"2026-08-03", "2026-08-19"}, dues)
}
