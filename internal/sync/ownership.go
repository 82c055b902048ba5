package sync

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"beetrack/internal/model"
)

type idSet map[uuid.UUID]struct{}

func (s idSet) has(id uuid.UUID) bool {
	_, ok := s[id]
	return ok
}

func (s idSet) add(ids ...uuid.UUID) {
	for _, id := range ids {
		s[id] = struct{}{}
	}
}

func (s idSet) slice() []uuid.UUID {
	out := make([]uuid.UUID, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	return out
}

func newIDSet(ids []uuid.UUID) idSet {
	s := make(idSet, len(ids))
	s.add(ids...)
	return s
}

// OwnerSets is the transitive closure of the ids a user owns: their
// apiaries, the hives in those apiaries, and the inspections in those
// hives. Soft-deleted rows are included so that tombstoned children remain
// addressable during sync. During a push the sets grow as new parents are
// created, letting children submitted in the same batch validate.
type OwnerSets struct {
	Apiaries    idSet
	Hives       idSet
	Inspections idSet
}

func resolveOwnerSets(tx *gorm.DB, userID uuid.UUID) (*OwnerSets, error) {
	var apiaryIDs []uuid.UUID
	if err := tx.Model(&model.Apiary{}).
		Where("user_id = ?", userID).
		Pluck("id", &apiaryIDs).Error; err != nil {
		return nil, fmt.Errorf("resolve apiary ids: %w", err)
	}

	var hiveIDs []uuid.UUID
	if len(apiaryIDs) > 0 {
		if err := tx.Model(&model.Hive{}).
			Where("apiary_id IN ?", apiaryIDs).
			Pluck("id", &hiveIDs).Error; err != nil {
			return nil, fmt.Errorf("resolve hive ids: %w", err)
		}
	}

	var inspectionIDs []uuid.UUID
	if len(hiveIDs) > 0 {
		if err := tx.Model(&model.Inspection{}).
			Where("hive_id IN ?", hiveIDs).
			Pluck("id", &inspectionIDs).Error; err != nil {
			return nil, fmt.Errorf("resolve inspection ids: %w", err)
		}
	}

	return &OwnerSets{
		Apiaries:    newIDSet(apiaryIDs),
		Hives:       newIDSet(hiveIDs),
		Inspections: newIDSet(inspectionIDs),
	}, nil
}
