package sync

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beetrack/internal/model"
)

func intPtr(n int) *int         { return &n }
func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }
func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestHiveCodecPositionOrderRename(t *testing.T) {
	h := &model.Hive{
		ApiaryID: uuid.New(),
		Name:     "North yard 1",
		HiveType: model.HiveTypeLangstroth,
		Status:   model.HiveStatusActive,
		Order:    intPtr(3),
	}
	rec := encodeHive(h)
	assert.Equal(t, 3, rec["position_order"])
	_, exposed := rec["order"]
	assert.False(t, exposed)

	var out model.Hive
	require.NoError(t, applyHive(&out, Record{
		"apiary_id":      h.ApiaryID.String(),
		"name":           "North yard 1",
		"position_order": float64(7),
	}))
	require.NotNil(t, out.Order)
	assert.Equal(t, 7, *out.Order)
}

func TestInspectionCodecJSONStrings(t *testing.T) {
	var insp model.Inspection
	require.NoError(t, applyInspection(&insp, Record{
		"hive_id":           uuid.New().String(),
		"inspected_at":      float64(1753000000000),
		"observations_json": `{"brood_pattern":"solid"}`,
		"weather_json":      nil,
	}))
	require.NotNil(t, insp.Observations)
	assert.Equal(t, "solid", insp.Observations["brood_pattern"])
	assert.Nil(t, insp.Weather)

	rec := encodeInspection(&insp)
	assert.Equal(t, `{"brood_pattern":"solid"}`, rec["observations_json"])
	assert.Nil(t, rec["weather_json"])
}

func TestCodecUnparseableJSONDegradesToNull(t *testing.T) {
	var e model.Event
	require.NoError(t, applyEvent(&e, Record{
		"hive_id":      uuid.New().String(),
		"event_type":   "swarm",
		"occurred_at":  float64(1753000000000),
		"details_json": "{not json",
	}))
	assert.Nil(t, e.Details)
}

func TestApplyRejectsMalformedDate(t *testing.T) {
	var h model.Hive
	err := applyHive(&h, Record{"installation_date": "20/07/2026"})
	assert.Error(t, err)

	var task model.Task
	err = applyTask(&task, Record{"due_date": "soon"})
	assert.Error(t, err)
}

func TestApplyRejectsMalformedForeignKey(t *testing.T) {
	var q model.Queen
	err := applyQueen(&q, Record{"hive_id": "not-a-uuid"})
	assert.Error(t, err)
}

func TestApplyIgnoresSystemAndUnknownFields(t *testing.T) {
	a := &model.Apiary{UserID: uuid.New(), Name: "Home"}
	before := a.UserID
	require.NoError(t, applyApiary(a, Record{
		"name":     "Renamed",
		"user_id":  uuid.New().String(),
		"_status":  "updated",
		"_changed": "name",
	}))
	assert.Equal(t, "Renamed", a.Name)
	assert.Equal(t, before, a.UserID)
}

func TestEncodeNeverExposesPrivateColumns(t *testing.T) {
	now := time.Now().UTC()
	a := &model.Apiary{UserID: uuid.New(), Name: "Home"}
	a.DeletedAt = &now
	task := &model.Task{UserID: uuid.New(), Title: "Feed", Source: model.TaskSourceManual, Priority: model.TaskPriorityMedium}

	for _, rec := range []Record{encodeApiary(a), encodeTask(task)} {
		_, hasUser := rec["user_id"]
		_, hasDeleted := rec["deleted_at"]
		assert.False(t, hasUser)
		assert.False(t, hasDeleted)
	}
}

func TestTaskCodecRoundTrip(t *testing.T) {
	hiveID := uuid.New()
	task := &model.Task{
		UserID:         uuid.New(),
		HiveID:         &hiveID,
		Title:          "Hive 1: Regular hive inspection",
		DueDate:        datePtr(2026, time.August, 3),
		Recurring:      true,
		RecurrenceRule: strPtr("every 14 days"),
		Source:         model.TaskSourceSystem,
		Priority:       model.TaskPriorityMedium,
	}
	rec := encodeTask(task)
	assert.Equal(t, hiveID.String(), rec["hive_id"])
	assert.Equal(t, "2026-08-03", rec["due_date"])
	assert.Equal(t, "system", rec["source"])
	assert.Nil(t, rec["completed_at"])

	var out model.Task
	require.NoError(t, applyTask(&out, rec))
	assert.Equal(t, task.Title, out.Title)
	assert.Equal(t, *task.DueDate, *out.DueDate)
	assert.Equal(t, model.TaskSourceSystem, out.Source)
	assert.True(t, out.Recurring)
}

func TestApiaryCodecNullables(t *testing.T) {
	a := &model.Apiary{
		UserID:   uuid.New(),
		Name:     "Valley",
		Latitude: f64Ptr(-33.87),
	}
	rec := encodeApiary(a)
	assert.Equal(t, -33.87, rec["latitude"])
	assert.Nil(t, rec["city"])
	assert.Nil(t, rec["archived_at"])

	var out model.Apiary
	require.NoError(t, applyApiary(&out, Record{
		"name":        "Valley",
		"latitude":    -33.87,
		"city":        nil,
		"archived_at": float64(1753000000000),
	}))
	require.NotNil(t, out.Latitude)
	assert.Equal(t, -33.87, *out.Latitude)
	assert.Nil(t, out.City)
	require.NotNil(t, out.ArchivedAt)
	assert.Equal(t, int64(1753000000000), out.ArchivedAt.UnixMilli())
}
