// Package sync implements the offline-first synchronization protocol between
// the mobile client's embedded database and the server store.
//
// The protocol is a single pull endpoint and a single push endpoint. Pull
// returns, per table, every owned row changed since the client's watermark,
// under a snapshot timestamp captured before any read. Push applies a batch
// of client creates/updates/deletes inside one transaction with server-wins
// conflict resolution: a server row newer than the client's watermark
// silently wins, and the client converges on its next pull.
package sync

import (
	"log/slog"
	"time"

	"gorm.io/gorm"
)

// Table names as they appear on the wire, in push processing order:
// parents strictly before children so that ownership sets can be expanded
// with rows created earlier in the same batch.
const (
	TableApiaries         = "apiaries"
	TableHives            = "hives"
	TableQueens           = "queens"
	TableInspections      = "inspections"
	TableInspectionPhotos = "inspection_photos"
	TableTreatments       = "treatments"
	TableHarvests         = "harvests"
	TableEvents           = "events"
	TableTasks            = "tasks"
	TableTaskCadences     = "task_cadences"
)

// Record is one wire-format row: flat keys, string-encoded JSON columns,
// millisecond timestamps, ISO dates.
type Record map[string]any

// TableChanges carries one table's change sets. The client syncs with
// created-as-updated semantics, so the server only ever fills Updated and
// Deleted; Created stays empty on pull and is merged into the update stream
// on push.
type TableChanges struct {
	Created []Record `json:"created"`
	Updated []Record `json:"updated"`
	Deleted []string `json:"deleted"`
}

// Changes maps table name to its change sets.
type Changes map[string]TableChanges

// PullResult is the pull response: the per-table change sets and the
// snapshot timestamp (epoch milliseconds) the client stores as its next
// watermark.
type PullResult struct {
	Changes   Changes `json:"changes"`
	Timestamp int64   `json:"timestamp"`
}

// PushResult summarizes an applied push. HivesTouched reports whether the
// batch carried any hive creates or updates, which obliges the caller to
// re-run cadence initialization for the user.
type PushResult struct {
	Created      int
	Updated      int
	Deleted      int
	Skipped      int
	HivesTouched bool
}

// Engine executes the pull and push protocol against a gorm database.
type Engine struct {
	db  *gorm.DB
	log *slog.Logger
	now func() time.Time
}

// NewEngine builds an engine. A nil clock defaults to time.Now; for
// deterministic tests pass the same clock configured as the gorm NowFunc.
func NewEngine(db *gorm.DB, log *slog.Logger, now func() time.Time) *Engine {
	if log == nil {
		log = slog.Default()
	}
	if now == nil {
		now = time.Now
	}
	return &Engine{db: db, log: log, now: now}
}

func msToTime(ms int64) *time.Time {
	if ms <= 0 {
		return nil
	}
	t := time.UnixMilli(ms).UTC()
	return &t
}
