package catalog

import "time"

// Overrides are per-subscription schedule customizations. Nil (or zero)
// values fall back to the catalog defaults.
type Overrides struct {
	IntervalDays *int
	SeasonMonth  *int
	SeasonDay    *int
}

// NextDue computes the next due date for a cadence strictly after from.
//
// Recurring templates yield from + interval days. Seasonal templates yield
// the next occurrence of their month/day, hemisphere-adjusted; an occurrence
// falling on from itself rolls over to the following year. The second return
// is false when the key is unknown or no schedule resolves.
func NextDue(key string, from time.Time, h Hemisphere, o Overrides) (time.Time, bool) {
	tpl, ok := TemplateByKey(key)
	if !ok {
		return time.Time{}, false
	}
	from = DateOf(from)

	switch tpl.Category {
	case Recurring:
		interval := tpl.IntervalDays
		if o.IntervalDays != nil && *o.IntervalDays > 0 {
			interval = *o.IntervalDays
		}
		if interval <= 0 {
			return time.Time{}, false
		}
		return from.AddDate(0, 0, interval), true

	case Seasonal:
		month := tpl.SeasonMonth
		if o.SeasonMonth != nil && *o.SeasonMonth > 0 {
			month = time.Month(*o.SeasonMonth)
		}
		day := tpl.SeasonDay
		if o.SeasonDay != nil && *o.SeasonDay > 0 {
			day = *o.SeasonDay
		}
		if month == 0 {
			return time.Time{}, false
		}
		adjusted := OffsetMonth(month, h)
		candidate := time.Date(from.Year(), adjusted, day, 0, 0, 0, 0, time.UTC)
		if !candidate.After(from) {
			candidate = time.Date(from.Year()+1, adjusted, day, 0, 0, 0, 0, time.UTC)
		}
		return candidate, true
	}
	return time.Time{}, false
}

// DateOf truncates t to a UTC calendar date at midnight.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
