package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beetrack/internal/catalog"
	"beetrack/internal/repository"
	"beetrack/internal/sync"
)

func TestPushWithHivesTriggersCadenceCatchUp(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := f.seedUser(t)

	apiaryID := uuid.New()
	hiveID := uuid.New()
	changes := sync.Changes{
		sync.TableApiaries: {Created: []sync.Record{{
			"id":   apiaryID.String(),
			"name": "Synced yard",
		}}},
		sync.TableHives: {Created: []sync.Record{{
			"id":        hiveID.String(),
			"apiary_id": apiaryID.String(),
			"name":      "Synced hive",
			"hive_type": "langstroth",
			"status":    "active",
		}}},
	}

	res, err := f.sync.Push(ctx, user.ID, changes, 0)
	require.NoError(t, err)
	assert.True(t, res.HivesTouched)
	assert.Equal(t, 2, res.Created)

	// The pushed hive bypassed the creation flow; the catch-up seeded
	// user-level and hive-level cadences and generated their first tasks.
	cadences, err := f.cadences.List(ctx, user.ID, repository.CadenceFilter{})
	require.NoError(t, err)
	assert.Len(t, cadences, len(catalog.UserTemplates())+2)

	tasks, err := f.tasks.List(ctx, user.ID, repository.TaskFilter{}, 100, 0)
	require.NoError(t, err)
	assert.Len(t, tasks, 3)
}

func TestPushWithoutHivesLeavesCadencesAlone(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := f.seedUser(t)

	changes := sync.Changes{
		sync.TableApiaries: {Created: []sync.Record{{
			"id":   uuid.New().String(),
			"name": "Quiet yard",
		}}},
	}

	res, err := f.sync.Push(ctx, user.ID, changes, 0)
	require.NoError(t, err)
	assert.False(t, res.HivesTouched)

	cadences, err := f.cadences.List(ctx, user.ID, repository.CadenceFilter{})
	require.NoError(t, err)
	assert.Empty(t, cadences)
}

func TestPullPassesThrough(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := f.seedUser(t)
	f.seedApiary(t, user.ID)

	res, err := f.sync.Pull(ctx, user.ID, nil)
	require.NoError(t, err)
	assert.Len(t, res.Changes[sync.TableApiaries].Updated, 1)
	assert.Equal(t, f.clk.Now().UnixMilli(), res.Timestamp)
}
