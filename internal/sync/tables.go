package sync

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"beetrack/internal/model"
)

// ownerKind says how a table's rows trace back to their owning user.
type ownerKind int

const (
	ownedByUser       ownerKind = iota // user_id column on the row
	ownedByApiary                      // apiary_id must be in the user's apiary set
	ownedByHive                        // hive_id must be in the user's hive set
	ownedByInspection                  // inspection_id must be in the user's inspection set
)

// row is any synced entity; model.Base provides the implementation.
type row interface {
	Meta() *model.Base
}

type rowPtr[T any] interface {
	*T
	row
}

func fetchRows[T any, PT rowPtr[T]](tx *gorm.DB, ids []uuid.UUID) ([]row, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []T
	if err := tx.Where("id IN ?", ids).Find(&out).Error; err != nil {
		return nil, err
	}
	return asRows[T, PT](out), nil
}

func findRows[T any, PT rowPtr[T]](q *gorm.DB) ([]row, error) {
	var out []T
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return asRows[T, PT](out), nil
}

func asRows[T any, PT rowPtr[T]](out []T) []row {
	rows := make([]row, len(out))
	for i := range out {
		rows[i] = PT(&out[i])
	}
	return rows
}

// tableDef wires one table into the engine: typed queries, the wire codec,
// and the ownership accessors. Ownership of top-level tables (apiaries,
// tasks, task_cadences) is the user_id column; child tables hang off a
// parent FK checked against the resolved owner sets.
type tableDef struct {
	name  string
	owner ownerKind

	fetch  func(tx *gorm.DB, ids []uuid.UUID) ([]row, error)
	find   func(q *gorm.DB) ([]row, error)
	newRow func() row

	encode func(r row) Record
	apply  func(r row, rec Record) error

	// child tables only
	parentID func(r row) uuid.UUID

	// top-level tables only
	ownerID  func(r row) uuid.UUID
	setOwner func(r row, id uuid.UUID)
}

func (d tableDef) topLevel() bool { return d.owner == ownedByUser }

// tables lists every synced table in push order: parents strictly before
// the children that reference them.
var tables = []tableDef{
	{
		name:     TableApiaries,
		owner:    ownedByUser,
		fetch:    fetchRows[model.Apiary],
		find:     findRows[model.Apiary],
		newRow:   func() row { return &model.Apiary{} },
		encode:   func(r row) Record { return encodeApiary(r.(*model.Apiary)) },
		apply:    func(r row, rec Record) error { return applyApiary(r.(*model.Apiary), rec) },
		ownerID:  func(r row) uuid.UUID { return r.(*model.Apiary).UserID },
		setOwner: func(r row, id uuid.UUID) { r.(*model.Apiary).UserID = id },
	},
	{
		name:     TableHives,
		owner:    ownedByApiary,
		fetch:    fetchRows[model.Hive],
		find:     findRows[model.Hive],
		newRow:   func() row { return &model.Hive{} },
		encode:   func(r row) Record { return encodeHive(r.(*model.Hive)) },
		apply:    func(r row, rec Record) error { return applyHive(r.(*model.Hive), rec) },
		parentID: func(r row) uuid.UUID { return r.(*model.Hive).ApiaryID },
	},
	{
		name:     TableQueens,
		owner:    ownedByHive,
		fetch:    fetchRows[model.Queen],
		find:     findRows[model.Queen],
		newRow:   func() row { return &model.Queen{} },
		encode:   func(r row) Record { return encodeQueen(r.(*model.Queen)) },
		apply:    func(r row, rec Record) error { return applyQueen(r.(*model.Queen), rec) },
		parentID: func(r row) uuid.UUID { return r.(*model.Queen).HiveID },
	},
	{
		name:     TableInspections,
		owner:    ownedByHive,
		fetch:    fetchRows[model.Inspection],
		find:     findRows[model.Inspection],
		newRow:   func() row { return &model.Inspection{} },
		encode:   func(r row) Record { return encodeInspection(r.(*model.Inspection)) },
		apply:    func(r row, rec Record) error { return applyInspection(r.(*model.Inspection), rec) },
		parentID: func(r row) uuid.UUID { return r.(*model.Inspection).HiveID },
	},
	{
		name:     TableInspectionPhotos,
		owner:    ownedByInspection,
		fetch:    fetchRows[model.InspectionPhoto],
		find:     findRows[model.InspectionPhoto],
		newRow:   func() row { return &model.InspectionPhoto{} },
		encode:   func(r row) Record { return encodeInspectionPhoto(r.(*model.InspectionPhoto)) },
		apply:    func(r row, rec Record) error { return applyInspectionPhoto(r.(*model.InspectionPhoto), rec) },
		parentID: func(r row) uuid.UUID { return r.(*model.InspectionPhoto).InspectionID },
	},
	{
		name:     TableTreatments,
		owner:    ownedByHive,
		fetch:    fetchRows[model.Treatment],
		find:     findRows[model.Treatment],
		newRow:   func() row { return &model.Treatment{} },
		encode:   func(r row) Record { return encodeTreatment(r.(*model.Treatment)) },
		apply:    func(r row, rec Record) error { return applyTreatment(r.(*model.Treatment), rec) },
		parentID: func(r row) uuid.UUID { return r.(*model.Treatment).HiveID },
	},
	{
		name:     TableHarvests,
		owner:    ownedByHive,
		fetch:    fetchRows[model.Harvest],
		find:     findRows[model.Harvest],
		newRow:   func() row { return &model.Harvest{} },
		encode:   func(r row) Record { return encodeHarvest(r.(*model.Harvest)) },
		apply:    func(r row, rec Record) error { return applyHarvest(r.(*model.Harvest), rec) },
		parentID: func(r row) uuid.UUID { return r.(*model.Harvest).HiveID },
	},
	{
		name:     TableEvents,
		owner:    ownedByHive,
		fetch:    fetchRows[model.Event],
		find:     findRows[model.Event],
		newRow:   func() row { return &model.Event{} },
		encode:   func(r row) Record { return encodeEvent(r.(*model.Event)) },
		apply:    func(r row, rec Record) error { return applyEvent(r.(*model.Event), rec) },
		parentID: func(r row) uuid.UUID { return r.(*model.Event).HiveID },
	},
	{
		name:     TableTasks,
		owner:    ownedByUser,
		fetch:    fetchRows[model.Task],
		find:     findRows[model.Task],
		newRow:   func() row { return &model.Task{} },
		encode:   func(r row) Record { return encodeTask(r.(*model.Task)) },
		apply:    func(r row, rec Record) error { return applyTask(r.(*model.Task), rec) },
		ownerID:  func(r row) uuid.UUID { return r.(*model.Task).UserID },
		setOwner: func(r row, id uuid.UUID) { r.(*model.Task).UserID = id },
	},
	{
		name:     TableTaskCadences,
		owner:    ownedByUser,
		fetch:    fetchRows[model.TaskCadence],
		find:     findRows[model.TaskCadence],
		newRow:   func() row { return &model.TaskCadence{} },
		encode:   func(r row) Record { return encodeTaskCadence(r.(*model.TaskCadence)) },
		apply:    func(r row, rec Record) error { return applyTaskCadence(r.(*model.TaskCadence), rec) },
		ownerID:  func(r row) uuid.UUID { return r.(*model.TaskCadence).UserID },
		setOwner: func(r row, id uuid.UUID) { r.(*model.TaskCadence).UserID = id },
	},
}

// ownershipScope narrows a query to rows the user owns.
func ownershipScope(q *gorm.DB, d tableDef, userID uuid.UUID, sets *OwnerSets) *gorm.DB {
	switch d.owner {
	case ownedByUser:
		return q.Where("user_id = ?", userID)
	case ownedByApiary:
		return q.Where("apiary_id IN ?", sets.Apiaries.slice())
	case ownedByHive:
		return q.Where("hive_id IN ?", sets.Hives.slice())
	case ownedByInspection:
		return q.Where("inspection_id IN ?", sets.Inspections.slice())
	}
	return q
}

// ownedExisting verifies an already-persisted row belongs to the user.
func ownedExisting(d tableDef, r row, userID uuid.UUID, sets *OwnerSets) bool {
	switch d.owner {
	case ownedByUser:
		return d.ownerID(r) == userID
	case ownedByApiary:
		return sets.Apiaries.has(d.parentID(r))
	case ownedByHive:
		return sets.Hives.has(d.parentID(r))
	case ownedByInspection:
		return sets.Inspections.has(d.parentID(r))
	}
	return false
}

// createAllowed verifies a new row's parent FK lands inside the user's
// current ownership sets. Top-level tables always pass; they get user_id
// injected instead.
func createAllowed(d tableDef, r row, sets *OwnerSets) bool {
	switch d.owner {
	case ownedByUser:
		return true
	case ownedByApiary:
		return sets.Apiaries.has(d.parentID(r))
	case ownedByHive:
		return sets.Hives.has(d.parentID(r))
	case ownedByInspection:
		return sets.Inspections.has(d.parentID(r))
	}
	return false
}
