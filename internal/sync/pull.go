package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Pull collects every owned row changed since the client's watermark.
// lastPulledAt is the previous pull's timestamp in epoch milliseconds, or
// nil for a first sync, which returns the full live dataset.
//
// The snapshot timestamp is captured before any read so that a write
// landing mid-pull is never lost: it may be delivered twice, once now and
// once on the next pull, but never zero times. Live rows always ride the
// updated bucket; the client applies an update for an unknown id as a
// create.
func (e *Engine) Pull(ctx context.Context, userID uuid.UUID, lastPulledAt *int64) (*PullResult, error) {
	ts := e.now().UTC().UnixMilli()

	sets, err := resolveOwnerSets(e.db.WithContext(ctx), userID)
	if err != nil {
		return nil, fmt.Errorf("pull: %w", err)
	}

	var since *time.Time
	if lastPulledAt != nil {
		t := time.UnixMilli(*lastPulledAt).UTC()
		since = &t
	}

	type tableResult struct {
		name    string
		changes TableChanges
		err     error
	}
	results := make(chan tableResult, len(tables))
	for _, d := range tables {
		go func(d tableDef) {
			tc, err := e.pullTable(ctx, d, userID, sets, since)
			results <- tableResult{name: d.name, changes: tc, err: err}
		}(d)
	}

	changes := make(Changes, len(tables))
	for range tables {
		r := <-results
		if r.err != nil {
			return nil, fmt.Errorf("pull %s: %w", r.name, r.err)
		}
		changes[r.name] = r.changes
	}

	e.log.Debug("pull complete", "user_id", userID, "timestamp", ts, "full", since == nil)
	return &PullResult{Changes: changes, Timestamp: ts}, nil
}

func (e *Engine) pullTable(ctx context.Context, d tableDef, userID uuid.UUID, sets *OwnerSets, since *time.Time) (TableChanges, error) {
	tc := TableChanges{Created: []Record{}, Updated: []Record{}, Deleted: []string{}}

	q := ownershipScope(e.db.WithContext(ctx), d, userID, sets)
	if since == nil {
		q = q.Where("deleted_at IS NULL")
	} else {
		q = q.Where("updated_at > ?", *since)
	}

	rows, err := d.find(q)
	if err != nil {
		return tc, err
	}
	for _, r := range rows {
		if r.Meta().Deleted() {
			tc.Deleted = append(tc.Deleted, r.Meta().ID.String())
			continue
		}
		tc.Updated = append(tc.Updated, d.encode(r))
	}
	return tc, nil
}
