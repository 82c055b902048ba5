package sync

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"beetrack/internal/model"
)

// Wire conventions, applied symmetrically by the per-table codecs below:
//
//   - UUIDs travel as strings, timestamps as epoch milliseconds, date-only
//     columns as ISO "YYYY-MM-DD" strings, enums as their string values.
//   - JSON columns travel JSON-encoded as text under a "_json" client name
//     (observations_json, weather_json, details_json, ai_analysis_json).
//   - hives.order is renamed to position_order on the wire.
//   - user_id and deleted_at never leave the server; deletions are signaled
//     through the protocol's deleted id lists instead.
//   - The apply functions form the writable-field allow-list: anything a
//     client sends outside them (id, user_id, created_at, bookkeeping
//     fields like _status/_changed) is ignored.

const dateLayout = "2006-01-02"

// ── encode helpers (server row → wire value) ─────────────────────────────

func fmtMS(t time.Time) int64 { return t.UTC().UnixMilli() }

func fmtMSPtr(t *time.Time) any {
	if t == nil {
		return nil
	}
	return fmtMS(*t)
}

func fmtDatePtr(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(dateLayout)
}

func uuidStrPtr(id *uuid.UUID) any {
	if id == nil {
		return nil
	}
	return id.String()
}

func orNil[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

func enumPtr[T ~string](p *T) any {
	if p == nil {
		return nil
	}
	return string(*p)
}

func jsonText(m datatypes.JSONMap) any {
	if m == nil {
		return nil
	}
	b, err := json.Marshal(map[string]any(m))
	if err != nil {
		return nil
	}
	return string(b)
}

// ── apply helpers (wire value → server field) ────────────────────────────
//
// Absent keys are no-ops so partial records only touch what they carry.
// Unparseable ids, timestamps, and dates make the record malformed; the
// push loop drops it and moves on.

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

func getString(rec Record, key string) (string, bool) {
	v, ok := rec[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func getEnum[T ~string](rec Record, key string) (T, bool) {
	s, ok := getString(rec, key)
	return T(s), ok
}

func getEnumPtr[T ~string](rec Record, key string) (*T, bool) {
	v, ok := rec[key]
	if !ok {
		return nil, false
	}
	if v == nil {
		return nil, true
	}
	s, ok := v.(string)
	if !ok {
		return nil, false
	}
	e := T(s)
	return &e, true
}

func getStringPtr(rec Record, key string) (*string, bool) {
	v, ok := rec[key]
	if !ok {
		return nil, false
	}
	if v == nil {
		return nil, true
	}
	s, ok := v.(string)
	if !ok {
		return nil, false
	}
	return &s, true
}

func getFloatPtr(rec Record, key string) (*float64, bool) {
	v, ok := rec[key]
	if !ok {
		return nil, false
	}
	if v == nil {
		return nil, true
	}
	f, ok := toFloat(v)
	if !ok {
		return nil, false
	}
	return &f, true
}

func getIntPtr(rec Record, key string) (*int, bool) {
	f, ok := getFloatPtr(rec, key)
	if !ok || f == nil {
		return nil, ok
	}
	n := int(*f)
	return &n, true
}

func getBool(rec Record, key string) (bool, bool) {
	v, ok := rec[key]
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

func getBoolPtr(rec Record, key string) (*bool, bool) {
	v, ok := rec[key]
	if !ok {
		return nil, false
	}
	if v == nil {
		return nil, true
	}
	b, ok := v.(bool)
	if !ok {
		return nil, false
	}
	return &b, true
}

// getTime reads a required timestamp sent as epoch milliseconds.
func getTime(rec Record, key string) (time.Time, bool, error) {
	v, ok := rec[key]
	if !ok || v == nil {
		return time.Time{}, false, nil
	}
	f, ok := toFloat(v)
	if !ok {
		return time.Time{}, false, fmt.Errorf("field %s: not a millisecond timestamp", key)
	}
	return time.UnixMilli(int64(f)).UTC(), true, nil
}

// getTimePtr reads a nullable timestamp; zero milliseconds means null.
func getTimePtr(rec Record, key string) (*time.Time, bool, error) {
	v, ok := rec[key]
	if !ok {
		return nil, false, nil
	}
	if v == nil {
		return nil, true, nil
	}
	f, ok := toFloat(v)
	if !ok {
		return nil, false, fmt.Errorf("field %s: not a millisecond timestamp", key)
	}
	return msToTime(int64(f)), true, nil
}

// getDatePtr reads a nullable date-only field sent as "YYYY-MM-DD".
func getDatePtr(rec Record, key string) (*time.Time, bool, error) {
	v, ok := rec[key]
	if !ok {
		return nil, false, nil
	}
	if v == nil {
		return nil, true, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, false, fmt.Errorf("field %s: not a date string", key)
	}
	d, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return nil, false, fmt.Errorf("field %s: %w", key, err)
	}
	return &d, true, nil
}

// getUUID reads a required foreign key.
func getUUID(rec Record, key string) (uuid.UUID, bool, error) {
	s, ok := getString(rec, key)
	if !ok {
		return uuid.Nil, false, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("field %s: %w", key, err)
	}
	return id, true, nil
}

// getUUIDPtr reads a nullable foreign key.
func getUUIDPtr(rec Record, key string) (*uuid.UUID, bool, error) {
	v, ok := rec[key]
	if !ok {
		return nil, false, nil
	}
	if v == nil {
		return nil, true, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, false, fmt.Errorf("field %s: not a uuid string", key)
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, false, fmt.Errorf("field %s: %w", key, err)
	}
	return &id, true, nil
}

// getJSON reads a JSON column sent either as a JSON-encoded string (the
// client schema stores these as text) or as an embedded object. Unparseable
// payloads degrade to null, matching the original protocol.
func getJSON(rec Record, key string) (datatypes.JSONMap, bool) {
	v, ok := rec[key]
	if !ok {
		return nil, false
	}
	switch val := v.(type) {
	case nil:
		return nil, true
	case string:
		var m map[string]any
		if err := json.Unmarshal([]byte(val), &m); err != nil {
			return nil, true
		}
		return datatypes.JSONMap(m), true
	case map[string]any:
		return datatypes.JSONMap(val), true
	case datatypes.JSONMap:
		return val, true
	}
	return nil, true
}

// ── apiaries ─────────────────────────────────────────────────────────────

func encodeApiary(a *model.Apiary) Record {
	return Record{
		"id":           a.ID.String(),
		"created_at":   fmtMS(a.CreatedAt),
		"updated_at":   fmtMS(a.UpdatedAt),
		"name":         a.Name,
		"latitude":     orNil(a.Latitude),
		"longitude":    orNil(a.Longitude),
		"city":         orNil(a.City),
		"country_code": orNil(a.CountryCode),
		"hex_color":    orNil(a.HexColor),
		"notes":        orNil(a.Notes),
		"archived_at":  fmtMSPtr(a.ArchivedAt),
	}
}

func applyApiary(a *model.Apiary, rec Record) error {
	if v, ok := getString(rec, "name"); ok {
		a.Name = v
	}
	if v, ok := getFloatPtr(rec, "latitude"); ok {
		a.Latitude = v
	}
	if v, ok := getFloatPtr(rec, "longitude"); ok {
		a.Longitude = v
	}
	if v, ok := getStringPtr(rec, "city"); ok {
		a.City = v
	}
	if v, ok := getStringPtr(rec, "country_code"); ok {
		a.CountryCode = v
	}
	if v, ok := getStringPtr(rec, "hex_color"); ok {
		a.HexColor = v
	}
	if v, ok := getStringPtr(rec, "notes"); ok {
		a.Notes = v
	}
	v, ok, err := getTimePtr(rec, "archived_at")
	if err != nil {
		return err
	}
	if ok {
		a.ArchivedAt = v
	}
	return nil
}

// ── hives ────────────────────────────────────────────────────────────────

func encodeHive(h *model.Hive) Record {
	return Record{
		"id":                h.ID.String(),
		"created_at":        fmtMS(h.CreatedAt),
		"updated_at":        fmtMS(h.UpdatedAt),
		"apiary_id":         h.ApiaryID.String(),
		"name":              h.Name,
		"hive_type":         string(h.HiveType),
		"status":            string(h.Status),
		"source":            enumPtr(h.Source),
		"installation_date": fmtDatePtr(h.InstallationDate),
		"color":             orNil(h.Color),
		"position_order":    orNil(h.Order),
		"notes":             orNil(h.Notes),
	}
}

func applyHive(h *model.Hive, rec Record) error {
	if v, ok, err := getUUID(rec, "apiary_id"); err != nil {
		return err
	} else if ok {
		h.ApiaryID = v
	}
	if v, ok := getString(rec, "name"); ok {
		h.Name = v
	}
	if v, ok := getEnum[model.HiveType](rec, "hive_type"); ok {
		h.HiveType = v
	}
	if v, ok := getEnum[model.HiveStatus](rec, "status"); ok {
		h.Status = v
	}
	if v, ok := getEnumPtr[model.HiveSource](rec, "source"); ok {
		h.Source = v
	}
	if v, ok, err := getDatePtr(rec, "installation_date"); err != nil {
		return err
	} else if ok {
		h.InstallationDate = v
	}
	if v, ok := getStringPtr(rec, "color"); ok {
		h.Color = v
	}
	if v, ok := getIntPtr(rec, "position_order"); ok {
		h.Order = v
	}
	if v, ok := getStringPtr(rec, "notes"); ok {
		h.Notes = v
	}
	return nil
}

// ── queens ───────────────────────────────────────────────────────────────

func encodeQueen(q *model.Queen) Record {
	return Record{
		"id":              q.ID.String(),
		"created_at":      fmtMS(q.CreatedAt),
		"updated_at":      fmtMS(q.UpdatedAt),
		"hive_id":         q.HiveID.String(),
		"marking_color":   orNil(q.MarkingColor),
		"marking_year":    orNil(q.MarkingYear),
		"origin":          enumPtr(q.Origin),
		"status":          string(q.Status),
		"race":            orNil(q.Race),
		"quality":         orNil(q.Quality),
		"fertilized":      q.Fertilized,
		"clipped":         q.Clipped,
		"birth_date":      fmtDatePtr(q.BirthDate),
		"introduced_date": fmtDatePtr(q.IntroducedDate),
		"replaced_date":   fmtDatePtr(q.ReplacedDate),
		"notes":           orNil(q.Notes),
	}
}

func applyQueen(q *model.Queen, rec Record) error {
	if v, ok, err := getUUID(rec, "hive_id"); err != nil {
		return err
	} else if ok {
		q.HiveID = v
	}
	if v, ok := getStringPtr(rec, "marking_color"); ok {
		q.MarkingColor = v
	}
	if v, ok := getIntPtr(rec, "marking_year"); ok {
		q.MarkingYear = v
	}
	if v, ok := getEnumPtr[model.QueenOrigin](rec, "origin"); ok {
		q.Origin = v
	}
	if v, ok := getEnum[model.QueenStatus](rec, "status"); ok {
		q.Status = v
	}
	if v, ok := getStringPtr(rec, "race"); ok {
		q.Race = v
	}
	if v, ok := getIntPtr(rec, "quality"); ok {
		q.Quality = v
	}
	if v, ok := getBool(rec, "fertilized"); ok {
		q.Fertilized = v
	}
	if v, ok := getBool(rec, "clipped"); ok {
		q.Clipped = v
	}
	if v, ok, err := getDatePtr(rec, "birth_date"); err != nil {
		return err
	} else if ok {
		q.BirthDate = v
	}
	if v, ok, err := getDatePtr(rec, "introduced_date"); err != nil {
		return err
	} else if ok {
		q.IntroducedDate = v
	}
	if v, ok, err := getDatePtr(rec, "replaced_date"); err != nil {
		return err
	} else if ok {
		q.ReplacedDate = v
	}
	if v, ok := getStringPtr(rec, "notes"); ok {
		q.Notes = v
	}
	return nil
}

// ── inspections ──────────────────────────────────────────────────────────

func encodeInspection(i *model.Inspection) Record {
	return Record{
		"id":                  i.ID.String(),
		"created_at":          fmtMS(i.CreatedAt),
		"updated_at":          fmtMS(i.UpdatedAt),
		"hive_id":             i.HiveID.String(),
		"inspected_at":        fmtMS(i.InspectedAt),
		"duration_minutes":    orNil(i.DurationMinutes),
		"experience_template": string(i.ExperienceTemplate),
		"observations_json":   jsonText(i.Observations),
		"weather_json":        jsonText(i.Weather),
		"impression":          orNil(i.Impression),
		"attention":           orNil(i.Attention),
		"reminder":            orNil(i.Reminder),
		"reminder_date":       fmtMSPtr(i.ReminderDate),
		"ai_summary":          orNil(i.AISummary),
		"notes":               orNil(i.Notes),
	}
}

func applyInspection(i *model.Inspection, rec Record) error {
	if v, ok, err := getUUID(rec, "hive_id"); err != nil {
		return err
	} else if ok {
		i.HiveID = v
	}
	if v, ok, err := getTime(rec, "inspected_at"); err != nil {
		return err
	} else if ok {
		i.InspectedAt = v
	}
	if v, ok := getIntPtr(rec, "duration_minutes"); ok {
		i.DurationMinutes = v
	}
	if v, ok := getEnum[model.ExperienceLevel](rec, "experience_template"); ok {
		i.ExperienceTemplate = v
	}
	if v, ok := getJSON(rec, "observations_json"); ok {
		i.Observations = v
	}
	if v, ok := getJSON(rec, "weather_json"); ok {
		i.Weather = v
	}
	if v, ok := getIntPtr(rec, "impression"); ok {
		i.Impression = v
	}
	if v, ok := getBoolPtr(rec, "attention"); ok {
		i.Attention = v
	}
	if v, ok := getStringPtr(rec, "reminder"); ok {
		i.Reminder = v
	}
	if v, ok, err := getTimePtr(rec, "reminder_date"); err != nil {
		return err
	} else if ok {
		i.ReminderDate = v
	}
	if v, ok := getStringPtr(rec, "ai_summary"); ok {
		i.AISummary = v
	}
	if v, ok := getStringPtr(rec, "notes"); ok {
		i.Notes = v
	}
	return nil
}

// ── inspection photos ────────────────────────────────────────────────────

func encodeInspectionPhoto(p *model.InspectionPhoto) Record {
	return Record{
		"id":               p.ID.String(),
		"created_at":       fmtMS(p.CreatedAt),
		"updated_at":       fmtMS(p.UpdatedAt),
		"inspection_id":    p.InspectionID.String(),
		"s3_key":           p.S3Key,
		"caption":          orNil(p.Caption),
		"ai_analysis_json": jsonText(p.AIAnalysis),
		"url":              orNil(p.URL),
		"uploaded_at":      fmtMS(p.UploadedAt),
	}
}

func applyInspectionPhoto(p *model.InspectionPhoto, rec Record) error {
	if v, ok, err := getUUID(rec, "inspection_id"); err != nil {
		return err
	} else if ok {
		p.InspectionID = v
	}
	if v, ok := getString(rec, "s3_key"); ok {
		p.S3Key = v
	}
	if v, ok := getStringPtr(rec, "caption"); ok {
		p.Caption = v
	}
	if v, ok := getJSON(rec, "ai_analysis_json"); ok {
		p.AIAnalysis = v
	}
	if v, ok := getStringPtr(rec, "url"); ok {
		p.URL = v
	}
	if v, ok, err := getTime(rec, "uploaded_at"); err != nil {
		return err
	} else if ok {
		p.UploadedAt = v
	}
	return nil
}

// ── treatments ───────────────────────────────────────────────────────────

func encodeTreatment(t *model.Treatment) Record {
	return Record{
		"id":                  t.ID.String(),
		"created_at":          fmtMS(t.CreatedAt),
		"updated_at":          fmtMS(t.UpdatedAt),
		"hive_id":             t.HiveID.String(),
		"treatment_type":      t.TreatmentType,
		"product_name":        orNil(t.ProductName),
		"method":              orNil(t.Method),
		"started_at":          fmtMS(t.StartedAt),
		"ended_at":            fmtMSPtr(t.EndedAt),
		"dosage":              orNil(t.Dosage),
		"effectiveness_notes": orNil(t.EffectivenessNotes),
		"follow_up_date":      fmtDatePtr(t.FollowUpDate),
	}
}

func applyTreatment(t *model.Treatment, rec Record) error {
	if v, ok, err := getUUID(rec, "hive_id"); err != nil {
		return err
	} else if ok {
		t.HiveID = v
	}
	if v, ok := getString(rec, "treatment_type"); ok {
		t.TreatmentType = v
	}
	if v, ok := getStringPtr(rec, "product_name"); ok {
		t.ProductName = v
	}
	if v, ok := getStringPtr(rec, "method"); ok {
		t.Method = v
	}
	if v, ok, err := getTime(rec, "started_at"); err != nil {
		return err
	} else if ok {
		t.StartedAt = v
	}
	if v, ok, err := getTimePtr(rec, "ended_at"); err != nil {
		return err
	} else if ok {
		t.EndedAt = v
	}
	if v, ok := getStringPtr(rec, "dosage"); ok {
		t.Dosage = v
	}
	if v, ok := getStringPtr(rec, "effectiveness_notes"); ok {
		t.EffectivenessNotes = v
	}
	if v, ok, err := getDatePtr(rec, "follow_up_date"); err != nil {
		return err
	} else if ok {
		t.FollowUpDate = v
	}
	return nil
}

// ── harvests ─────────────────────────────────────────────────────────────

func encodeHarvest(h *model.Harvest) Record {
	return Record{
		"id":               h.ID.String(),
		"created_at":       fmtMS(h.CreatedAt),
		"updated_at":       fmtMS(h.UpdatedAt),
		"hive_id":          h.HiveID.String(),
		"harvested_at":     fmtMS(h.HarvestedAt),
		"weight_kg":        orNil(h.WeightKg),
		"moisture_percent": orNil(h.MoisturePercent),
		"honey_type":       orNil(h.HoneyType),
		"flavor_notes":     orNil(h.FlavorNotes),
		"color":            orNil(h.Color),
		"frames_harvested": orNil(h.FramesHarvested),
		"notes":            orNil(h.Notes),
	}
}

func applyHarvest(h *model.Harvest, rec Record) error {
	if v, ok, err := getUUID(rec, "hive_id"); err != nil {
		return err
	} else if ok {
		h.HiveID = v
	}
	if v, ok, err := getTime(rec, "harvested_at"); err != nil {
		return err
	} else if ok {
		h.HarvestedAt = v
	}
	if v, ok := getFloatPtr(rec, "weight_kg"); ok {
		h.WeightKg = v
	}
	if v, ok := getFloatPtr(rec, "moisture_percent"); ok {
		h.MoisturePercent = v
	}
	if v, ok := getStringPtr(rec, "honey_type"); ok {
		h.HoneyType = v
	}
	if v, ok := getStringPtr(rec, "flavor_notes"); ok {
		h.FlavorNotes = v
	}
	if v, ok := getStringPtr(rec, "color"); ok {
		h.Color = v
	}
	if v, ok := getIntPtr(rec, "frames_harvested"); ok {
		h.FramesHarvested = v
	}
	if v, ok := getStringPtr(rec, "notes"); ok {
		h.Notes = v
	}
	return nil
}

// ── events ───────────────────────────────────────────────────────────────

func encodeEvent(e *model.Event) Record {
	return Record{
		"id":           e.ID.String(),
		"created_at":   fmtMS(e.CreatedAt),
		"updated_at":   fmtMS(e.UpdatedAt),
		"hive_id":      e.HiveID.String(),
		"event_type":   string(e.EventType),
		"occurred_at":  fmtMS(e.OccurredAt),
		"details_json": jsonText(e.Details),
		"notes":        orNil(e.Notes),
	}
}

func applyEvent(e *model.Event, rec Record) error {
	if v, ok, err := getUUID(rec, "hive_id"); err != nil {
		return err
	} else if ok {
		e.HiveID = v
	}
	if v, ok := getEnum[model.EventType](rec, "event_type"); ok {
		e.EventType = v
	}
	if v, ok, err := getTime(rec, "occurred_at"); err != nil {
		return err
	} else if ok {
		e.OccurredAt = v
	}
	if v, ok := getJSON(rec, "details_json"); ok {
		e.Details = v
	}
	if v, ok := getStringPtr(rec, "notes"); ok {
		e.Notes = v
	}
	return nil
}

// ── tasks ────────────────────────────────────────────────────────────────

func encodeTask(t *model.Task) Record {
	return Record{
		"id":              t.ID.String(),
		"created_at":      fmtMS(t.CreatedAt),
		"updated_at":      fmtMS(t.UpdatedAt),
		"hive_id":         uuidStrPtr(t.HiveID),
		"apiary_id":       uuidStrPtr(t.ApiaryID),
		"title":           t.Title,
		"description":     orNil(t.Description),
		"due_date":        fmtDatePtr(t.DueDate),
		"recurring":       t.Recurring,
		"recurrence_rule": orNil(t.RecurrenceRule),
		"source":          string(t.Source),
		"completed_at":    fmtMSPtr(t.CompletedAt),
		"priority":        string(t.Priority),
	}
}

func applyTask(t *model.Task, rec Record) error {
	if v, ok, err := getUUIDPtr(rec, "hive_id"); err != nil {
		return err
	} else if ok {
		t.HiveID = v
	}
	if v, ok, err := getUUIDPtr(rec, "apiary_id"); err != nil {
		return err
	} else if ok {
		t.ApiaryID = v
	}
	if v, ok := getString(rec, "title"); ok {
		t.Title = v
	}
	if v, ok := getStringPtr(rec, "description"); ok {
		t.Description = v
	}
	if v, ok, err := getDatePtr(rec, "due_date"); err != nil {
		return err
	} else if ok {
		t.DueDate = v
	}
	if v, ok := getBool(rec, "recurring"); ok {
		t.Recurring = v
	}
	if v, ok := getStringPtr(rec, "recurrence_rule"); ok {
		t.RecurrenceRule = v
	}
	if v, ok := getEnum[model.TaskSource](rec, "source"); ok {
		t.Source = v
	}
	if v, ok, err := getTimePtr(rec, "completed_at"); err != nil {
		return err
	} else if ok {
		t.CompletedAt = v
	}
	if v, ok := getEnum[model.TaskPriority](rec, "priority"); ok {
		t.Priority = v
	}
	return nil
}

// ── task cadences ────────────────────────────────────────────────────────

func encodeTaskCadence(c *model.TaskCadence) Record {
	return Record{
		"id":                   c.ID.String(),
		"created_at":           fmtMS(c.CreatedAt),
		"updated_at":           fmtMS(c.UpdatedAt),
		"hive_id":              uuidStrPtr(c.HiveID),
		"cadence_key":          c.CadenceKey,
		"is_active":            c.IsActive,
		"last_generated_at":    fmtMSPtr(c.LastGeneratedAt),
		"next_due_date":        fmtDatePtr(c.NextDueDate),
		"custom_interval_days": orNil(c.CustomIntervalDays),
		"custom_season_month":  orNil(c.CustomSeasonMonth),
		"custom_season_day":    orNil(c.CustomSeasonDay),
	}
}

func applyTaskCadence(c *model.TaskCadence, rec Record) error {
	if v, ok, err := getUUIDPtr(rec, "hive_id"); err != nil {
		return err
	} else if ok {
		c.HiveID = v
	}
	if v, ok := getString(rec, "cadence_key"); ok {
		c.CadenceKey = v
	}
	if v, ok := getBool(rec, "is_active"); ok {
		c.IsActive = v
	}
	if v, ok, err := getTimePtr(rec, "last_generated_at"); err != nil {
		return err
	} else if ok {
		c.LastGeneratedAt = v
	}
	if v, ok, err := getDatePtr(rec, "next_due_date"); err != nil {
		return err
	} else if ok {
		c.NextDueDate = v
	}
	if v, ok := getIntPtr(rec, "custom_interval_days"); ok {
		c.CustomIntervalDays = v
	}
	if v, ok := getIntPtr(rec, "custom_season_month"); ok {
		c.CustomSeasonMonth = v
	}
	if v, ok := getIntPtr(rec, "custom_season_day"); ok {
		c.CustomSeasonDay = v
	}
	return nil
}
