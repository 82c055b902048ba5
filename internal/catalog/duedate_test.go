package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextDueRecurring(t *testing.T) {
	from := date(2026, time.January, 1)

	next, ok := NextDue("regular_inspection", from, North, Overrides{})
	require.True(t, ok)
	assert.Equal(t, date(2026, time.January, 15), next)

	ten := 10
	next, ok = NextDue("regular_inspection", from, North, Overrides{IntervalDays: &ten})
	require.True(t, ok)
	assert.Equal(t, date(2026, time.January, 11), next)

	// A zero override falls back to the catalog interval.
	zero := 0
	next, ok = NextDue("varroa_monitoring", from, North, Overrides{IntervalDays: &zero})
	require.True(t, ok)
	assert.Equal(t, date(2026, time.January, 31), next)
}

func TestNextDueSeasonal(t *testing.T) {
	// spring_assessment is March 15 in the north.
	next, ok := NextDue("spring_assessment", date(2026, time.January, 10), North, Overrides{})
	require.True(t, ok)
	assert.Equal(t, date(2026, time.March, 15), next)

	// Past this year's occurrence: roll to next year.
	next, ok = NextDue("spring_assessment", date(2026, time.April, 1), North, Overrides{})
	require.True(t, ok)
	assert.Equal(t, date(2027, time.March, 15), next)

	// Landing exactly on the occurrence also rolls: strictly after.
	next, ok = NextDue("spring_assessment", date(2026, time.March, 15), North, Overrides{})
	require.True(t, ok)
	assert.Equal(t, date(2027, time.March, 15), next)
}

func TestNextDueSeasonalSouth(t *testing.T) {
	// March 15 shifts to September 15 below the equator.
	next, ok := NextDue("spring_assessment", date(2026, time.April, 1), South, Overrides{})
	require.True(t, ok)
	assert.Equal(t, date(2026, time.September, 15), next)
}

func TestNextDueSeasonalOverrides(t *testing.T) {
	month, day := 6, 2
	next, ok := NextDue("spring_assessment", date(2026, time.January, 1), North, Overrides{
		SeasonMonth: &month,
		SeasonDay:   &day,
	})
	require.True(t, ok)
	assert.Equal(t, date(2026, time.June, 2), next)
}

func TestNextDueUnknownKey(t *testing.T) {
	_, ok := NextDue("paint_the_fence", date(2026, time.January, 1), North, Overrides{})
	assert.False(t, ok)
}

func TestNextDueStrictlyAfter(t *testing.T) {
	for _, tpl := range Catalog {
		from := date(2026, time.July, 20)
		next, ok := NextDue(tpl.Key, from, North, Overrides{})
		require.True(t, ok, tpl.Key)
		assert.True(t, next.After(from), "%s: %s not after %s", tpl.Key, next, from)
	}
}

func TestDateOf(t *testing.T) {
	ts := time.Date(2026, time.July, 20, 18, 42, 3, 99, time.UTC)
	assert.Equal(t, date(2026, time.July, 20), DateOf(ts))
}
