package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogKeysUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, tpl := range Catalog {
		assert.False(t, seen[tpl.Key], "duplicate key %s", tpl.Key)
		seen[tpl.Key] = true
	}
	assert.Len(t, Catalog, 19)
}

func TestCatalogScheduleModes(t *testing.T) {
	for _, tpl := range Catalog {
		switch tpl.Category {
		case Recurring:
			assert.Positive(t, tpl.IntervalDays, "recurring %s needs an interval", tpl.Key)
			assert.Zero(t, tpl.SeasonMonth, "recurring %s must not carry a season", tpl.Key)
		case Seasonal:
			assert.Zero(t, tpl.IntervalDays, "seasonal %s must not carry an interval", tpl.Key)
			assert.True(t, tpl.SeasonMonth >= 1 && tpl.SeasonMonth <= 12, "seasonal %s month", tpl.Key)
			assert.True(t, tpl.SeasonDay >= 1 && tpl.SeasonDay <= 28, "seasonal %s day", tpl.Key)
		default:
			t.Fatalf("unknown category %q on %s", tpl.Category, tpl.Key)
		}
	}
}

func TestCatalogScopes(t *testing.T) {
	hive := HiveTemplates()
	user := UserTemplates()

	require.Len(t, hive, 2)
	keys := []string{hive[0].Key, hive[1].Key}
	assert.ElementsMatch(t, []string{"regular_inspection", "varroa_monitoring"}, keys)

	assert.Len(t, user, len(Catalog)-2)
	for _, tpl := range hive {
		assert.Equal(t, Recurring, tpl.Category)
	}
}

func TestTemplateByKey(t *testing.T) {
	tpl, ok := TemplateByKey("equipment_check")
	require.True(t, ok)
	assert.Equal(t, 60, tpl.IntervalDays)
	assert.Equal(t, ScopeUser, tpl.Scope)
	assert.Equal(t, "low", tpl.Priority)

	_, ok = TemplateByKey("mow_the_lawn")
	assert.False(t, ok)
}
