// Package catalog holds the immutable cadence template catalog and the pure
// scheduling helpers built on it: hemisphere detection and next-due-date
// computation. Nothing in this package touches the database.
package catalog

import "time"

type Category string

const (
	Recurring Category = "recurring"
	Seasonal  Category = "seasonal"
)

type Season string

const (
	Spring    Season = "spring"
	Summer    Season = "summer"
	Fall      Season = "fall"
	Winter    Season = "winter"
	YearRound Season = "year_round"
)

// Scope says whether a template is seeded once per user or once per hive.
type Scope string

const (
	ScopeUser Scope = "user"
	ScopeHive Scope = "hive"
)

// Template is one catalog entry. Recurring templates carry IntervalDays;
// seasonal templates carry SeasonMonth/SeasonDay. Priority values match the
// task priority enum.
type Template struct {
	Key          string
	Title        string
	Description  string
	Category     Category
	Season       Season
	Priority     string
	Scope        Scope
	IntervalDays int        // recurring only
	SeasonMonth  time.Month // seasonal only
	SeasonDay    int        // seasonal only
}

// Catalog is the full template list, loaded once at process start and never
// mutated. Months are northern-hemisphere; OffsetMonth shifts them for
// southern users.
var Catalog = []Template{
	// Year-round recurring
	{
		Key:   "regular_inspection",
		Title: "Regular hive inspection",
		Description: "Open each hive and check brood pattern, food stores, queen " +
			"presence, and overall colony health.",
		Category:     Recurring,
		Season:       YearRound,
		Priority:     "medium",
		Scope:        ScopeHive,
		IntervalDays: 14,
	},
	{
		Key:   "varroa_monitoring",
		Title: "Varroa mite monitoring",
		Description: "Perform a mite count using a sugar roll, alcohol wash, or " +
			"sticky board to assess varroa levels.",
		Category:     Recurring,
		Season:       YearRound,
		Priority:     "high",
		Scope:        ScopeHive,
		IntervalDays: 30,
	},
	{
		Key:   "equipment_check",
		Title: "Equipment maintenance check",
		Description: "Inspect hive bodies, frames, bottom boards, and covers for " +
			"damage, rot, or wear. Repair or replace as needed.",
		Category:     Recurring,
		Season:       YearRound,
		Priority:     "low",
		Scope:        ScopeUser,
		IntervalDays: 60,
	},

	// Spring (March-April)
	{
		Key:   "spring_assessment",
		Title: "Spring colony assessment",
		Description: "Evaluate each colony after winter: check population size, food " +
			"stores, brood presence, and queen status.",
		Category:    Seasonal,
		Season:      Spring,
		Priority:    "high",
		Scope:       ScopeUser,
		SeasonMonth: time.March,
		SeasonDay:   15,
	},
	{
		Key:   "clean_bottom_boards",
		Title: "Clean or replace bottom boards",
		Description: "Remove debris and dead bees from bottom boards. Replace with " +
			"clean boards if screened bottoms are used.",
		Category:    Seasonal,
		Season:      Spring,
		Priority:    "medium",
		Scope:       ScopeUser,
		SeasonMonth: time.March,
		SeasonDay:   15,
	},
	{
		Key:   "spring_feeding",
		Title: "Spring feeding assessment",
		Description: "Check if colonies need supplemental feeding (1:1 sugar syrup " +
			"or pollen patties) to stimulate buildup.",
		Category:    Seasonal,
		Season:      Spring,
		Priority:    "high",
		Scope:       ScopeUser,
		SeasonMonth: time.March,
		SeasonDay:   1,
	},
	{
		Key:   "reverse_brood_boxes",
		Title: "Reverse brood boxes",
		Description: "Swap the upper and lower brood boxes to encourage the queen " +
			"to move upward and reduce swarming pressure.",
		Category:    Seasonal,
		Season:      Spring,
		Priority:    "medium",
		Scope:       ScopeUser,
		SeasonMonth: time.April,
		SeasonDay:   1,
	},

	// Late spring / early summer (May-June)
	{
		Key:   "swarm_prevention",
		Title: "Swarm prevention check",
		Description: "Look for swarm cells, crowded brood nests, and congestion. " +
			"Split strong colonies or add space as needed.",
		Category:    Seasonal,
		Season:      Spring,
		Priority:    "high",
		Scope:       ScopeUser,
		SeasonMonth: time.May,
		SeasonDay:   1,
	},
	{
		Key:   "add_honey_supers",
		Title: "Add honey supers",
		Description: "When the colony is strong and nectar flow begins, add honey " +
			"supers above the queen excluder.",
		Category:    Seasonal,
		Season:      Summer,
		Priority:    "medium",
		Scope:       ScopeUser,
		SeasonMonth: time.May,
		SeasonDay:   15,
	},

	// Summer (June-August)
	{
		Key:   "monitor_honey_flow",
		Title: "Monitor honey flow and supers",
		Description: "Check super fill levels. Add additional supers before existing " +
			"ones are fully capped to avoid swarming.",
		Category:    Seasonal,
		Season:      Summer,
		Priority:    "medium",
		Scope:       ScopeUser,
		SeasonMonth: time.June,
		SeasonDay:   15,
	},
	{
		Key:   "harvest_honey",
		Title: "Harvest honey",
		Description: "Remove fully capped honey supers. Extract, filter, and bottle " +
			"honey. Return wet supers for cleanup.",
		Category:    Seasonal,
		Season:      Summer,
		Priority:    "medium",
		Scope:       ScopeUser,
		SeasonMonth: time.July,
		SeasonDay:   15,
	},
	{
		Key:   "water_source_check",
		Title: "Ensure water source available",
		Description: "Verify bees have a nearby clean water source. Set up a water " +
			"station with landing spots if needed.",
		Category:    Seasonal,
		Season:      Summer,
		Priority:    "low",
		Scope:       ScopeUser,
		SeasonMonth: time.June,
		SeasonDay:   1,
	},

	// Fall (September-October)
	{
		Key:   "fall_varroa_treatment",
		Title: "Fall varroa treatment",
		Description: "Apply a varroa treatment (e.g. oxalic acid, Apivar, or " +
			"formic acid) after the last honey harvest.",
		Category:    Seasonal,
		Season:      Fall,
		Priority:    "urgent",
		Scope:       ScopeUser,
		SeasonMonth: time.September,
		SeasonDay:   1,
	},
	{
		Key:   "fall_feeding",
		Title: "Fall feeding for winter stores",
		Description: "Feed 2:1 sugar syrup to colonies with insufficient winter " +
			"stores. Target weight varies by region.",
		Category:    Seasonal,
		Season:      Fall,
		Priority:    "high",
		Scope:       ScopeUser,
		SeasonMonth: time.September,
		SeasonDay:   15,
	},
	{
		Key:   "reduce_entrance",
		Title: "Reduce hive entrance",
		Description: "Install entrance reducers to help guard bees defend against " +
			"robbing and prepare for cooler weather.",
		Category:    Seasonal,
		Season:      Fall,
		Priority:    "medium",
		Scope:       ScopeUser,
		SeasonMonth: time.October,
		SeasonDay:   1,
	},
	{
		Key:   "winter_prep",
		Title: "Winter preparation",
		Description: "Wrap hives or install moisture quilts as needed for your " +
			"climate. Ensure upper ventilation. Remove queen excluders.",
		Category:    Seasonal,
		Season:      Fall,
		Priority:    "high",
		Scope:       ScopeUser,
		SeasonMonth: time.October,
		SeasonDay:   15,
	},

	// Winter (November-February)
	{
		Key:   "winter_weight_check",
		Title: "Check hive weight and stores",
		Description: "Heft or weigh hives to estimate remaining stores. Apply " +
			"emergency fondant or sugar if dangerously light.",
		Category:    Seasonal,
		Season:      Winter,
		Priority:    "high",
		Scope:       ScopeUser,
		SeasonMonth: time.December,
		SeasonDay:   15,
	},
	{
		Key:   "winter_ventilation",
		Title: "Check winter ventilation",
		Description: "Ensure upper ventilation is open to prevent moisture buildup " +
			"inside the hive. Check for ice blocking entrances.",
		Category:    Seasonal,
		Season:      Winter,
		Priority:    "medium",
		Scope:       ScopeUser,
		SeasonMonth: time.January,
		SeasonDay:   15,
	},
	{
		Key:   "winter_deadout_check",
		Title: "Monitor for dead-outs",
		Description: "Listen at the entrance or gently tap the hive to check for " +
			"activity. Investigate any silent hives on warm days.",
		Category:    Seasonal,
		Season:      Winter,
		Priority:    "medium",
		Scope:       ScopeUser,
		SeasonMonth: time.February,
		SeasonDay:   1,
	},
}

var byKey = func() map[string]Template {
	m := make(map[string]Template, len(Catalog))
	for _, t := range Catalog {
		m[t.Key] = t
	}
	return m
}()

// TemplateByKey looks up a template by its unique key.
func TemplateByKey(key string) (Template, bool) {
	t, ok := byKey[key]
	return t, ok
}

// HiveTemplates returns the templates seeded once per hive.
func HiveTemplates() []Template {
	return byScope(ScopeHive)
}

// UserTemplates returns the templates seeded once per user.
func UserTemplates() []Template {
	return byScope(ScopeUser)
}

func byScope(s Scope) []Template {
	var out []Template
	for _, t := range Catalog {
		if t.Scope == s {
			out = append(out, t)
		}
	}
	return out
}
