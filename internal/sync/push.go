package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Push applies a client batch inside one transaction, table by table in
// parent-before-child order. lastPulledAt is the client's watermark in
// epoch milliseconds; zero means the client has never pulled and conflict
// checks are skipped.
//
// Conflict resolution is server-wins: an update against a row the server
// changed after the watermark is dropped, and the client picks up the
// server's version on its next pull. Records that fail ownership checks or
// carry malformed ids, dates, or timestamps are dropped individually with a
// log line; one bad record never aborts the batch.
func (e *Engine) Push(ctx context.Context, userID uuid.UUID, changes Changes, lastPulledAt int64) (*PushResult, error) {
	res := &PushResult{}
	watermark := msToTime(lastPulledAt)

	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sets, err := resolveOwnerSets(tx, userID)
		if err != nil {
			return err
		}

		for _, d := range tables {
			tc, ok := changes[d.name]
			if !ok {
				continue
			}
			if err := e.pushTable(tx, d, userID, tc, sets, watermark, res); err != nil {
				return fmt.Errorf("push %s: %w", d.name, err)
			}
			if d.name == TableHives && len(tc.Created)+len(tc.Updated) > 0 {
				res.HivesTouched = true
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.log.Info("push applied",
		"user_id", userID,
		"created", res.Created, "updated", res.Updated,
		"deleted", res.Deleted, "skipped", res.Skipped)
	return res, nil
}

func (e *Engine) pushTable(tx *gorm.DB, d tableDef, userID uuid.UUID, tc TableChanges, sets *OwnerSets, watermark *time.Time, res *PushResult) error {
	records := make([]Record, 0, len(tc.Created)+len(tc.Updated))
	records = append(records, tc.Created...)
	records = append(records, tc.Updated...)

	ids := make([]uuid.UUID, 0, len(records))
	parsed := make([]uuid.UUID, len(records))
	valid := make([]bool, len(records))
	for i, rec := range records {
		raw, _ := getString(rec, "id")
		id, err := uuid.Parse(raw)
		if err != nil {
			e.log.Warn("push: malformed record id", "table", d.name, "id", raw)
			res.Skipped++
			continue
		}
		parsed[i] = id
		valid[i] = true
		ids = append(ids, id)
	}

	existing, err := e.fetchByID(tx, d, ids)
	if err != nil {
		return err
	}

	for i, rec := range records {
		if !valid[i] {
			continue
		}
		id := parsed[i]

		if cur, ok := existing[id]; ok {
			if watermark != nil && cur.Meta().UpdatedAt.After(*watermark) {
				res.Skipped++
				continue
			}
			if !ownedExisting(d, cur, userID, sets) {
				e.log.Warn("push: update on row not owned by user", "table", d.name, "id", id)
				res.Skipped++
				continue
			}
			if err := d.apply(cur, rec); err != nil {
				e.log.Warn("push: malformed record dropped", "table", d.name, "id", id, "error", err)
				res.Skipped++
				continue
			}
			if err := tx.Save(cur).Error; err != nil {
				return err
			}
			res.Updated++
			continue
		}

		r := d.newRow()
		if err := d.apply(r, rec); err != nil {
			e.log.Warn("push: malformed record dropped", "table", d.name, "id", id, "error", err)
			res.Skipped++
			continue
		}
		if d.topLevel() {
			d.setOwner(r, userID)
		} else if !createAllowed(d, r, sets) {
			e.log.Warn("push: create under parent not owned by user", "table", d.name, "id", id)
			res.Skipped++
			continue
		}
		r.Meta().ID = id
		if err := tx.Create(r).Error; err != nil {
			return err
		}
		res.Created++
		existing[id] = r

		// Children submitted later in the same batch may reference this row.
		switch d.name {
		case TableApiaries:
			sets.Apiaries.add(id)
		case TableHives:
			sets.Hives.add(id)
		case TableInspections:
			sets.Inspections.add(id)
		}
	}

	return e.pushDeletes(tx, d, userID, tc.Deleted, sets, res)
}

func (e *Engine) pushDeletes(tx *gorm.DB, d tableDef, userID uuid.UUID, deleted []string, sets *OwnerSets, res *PushResult) error {
	if len(deleted) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(deleted))
	for _, raw := range deleted {
		id, err := uuid.Parse(raw)
		if err != nil {
			e.log.Warn("push: malformed deleted id", "table", d.name, "id", raw)
			res.Skipped++
			continue
		}
		ids = append(ids, id)
	}

	existing, err := e.fetchByID(tx, d, ids)
	if err != nil {
		return err
	}
	now := e.now().UTC()
	for _, id := range ids {
		r, ok := existing[id]
		if !ok {
			continue
		}
		if !ownedExisting(d, r, userID, sets) {
			e.log.Warn("push: delete on row not owned by user", "table", d.name, "id", id)
			res.Skipped++
			continue
		}
		if r.Meta().Deleted() {
			continue
		}
		ts := now
		r.Meta().DeletedAt = &ts
		r.Meta().UpdatedAt = ts
		if err := tx.Save(r).Error; err != nil {
			return err
		}
		res.Deleted++
	}
	return nil
}

func (e *Engine) fetchByID(tx *gorm.DB, d tableDef, ids []uuid.UUID) (map[uuid.UUID]row, error) {
	rows, err := d.fetch(tx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]row, len(rows))
	for _, r := range rows {
		byID[r.Meta().ID] = r
	}
	return byID, nil
}
