package reconcile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapCatalog is a simple test catalog keyed by lower-cased name.
type mapCatalog map[string]int

func (m mapCatalog) Lookup(name string) (int, bool) {
	id, ok := m[strings.ToLower(name)]
	return id, ok
}

// suggestingCatalog proposes a fixed name for anything unknown.
type suggestingCatalog struct {
	mapCatalog
	suggestion string
}

func (s suggestingCatalog) Suggest(name string) (string, bool) {
	return s.suggestion, s.suggestion != ""
}

// mapInventory is a simple test inventory.
type mapInventory map[int][]string

func (m mapInventory) Locations(id int) []string {
	return m[id]
}

func TestDedupe(t *testing.T) {
	refs := []Reference{
		{Name: "Odium", Location: "wardrobe"},
		{Name: "Toutatis's Cape", Location: "wardrobe2"},
		{Name: "ODIUM", Location: "wardrobe"},
		{Name: "Odium", Location: "wardrobe3"},
		{Name: "toutatis's cape", Location: "wardrobe2"},
		{Name: "Odium", Location: UnknownLocation},
	}

	got := Dedupe(refs)

	assert.Equal(t, []Reference{
		{Name: "Odium", Location: "wardrobe"},
		{Name: "Toutatis's Cape", Location: "wardrobe2"},
		{Name: "Odium", Location: "wardrobe3"},
		{Name: "Odium", Location: UnknownLocation},
	}, got)
}

func TestDedupe_LocationIsCaseSensitive(t *testing.T) {
	got := Dedupe([]Reference{
		{Name: "Odium", Location: "Wardrobe"},
		{Name: "Odium", Location: "wardrobe"},
	})
	assert.Len(t, got, 2)
}

func TestClassify_Examples(t *testing.T) {
	catalog := mapCatalog{"thief's knife": 100, "mandau": 200, "vajra": 300}
	inventory := mapInventory{100: {"wardrobe1"}, 300: {"inventory", "safe"}}

	refs := []Reference{
		{Name: "Thief's Knife", Location: "wardrobe2"},
		{Name: "Nonexistent Dagger", Location: "wardrobe"},
		{Name: "Mandau", Location: "wardrobe"},
		{Name: "Vajra", Location: "safe"},
	}

	report := Classify(catalog, inventory, refs)

	require.Len(t, report.WrongBag, 1)
	assert.Equal(t, Result{
		Name:     "Thief's Knife",
		Expected: "wardrobe2",
		ID:       100,
		Status:   StatusWrongBag,
		Actual:   []string{"wardrobe1"},
	}, report.WrongBag[0])

	require.Len(t, report.Unknown, 1)
	assert.Equal(t, "Nonexistent Dagger", report.Unknown[0].Name)
	assert.Zero(t, report.Unknown[0].ID)

	require.Len(t, report.Missing, 1)
	assert.Equal(t, 200, report.Missing[0].ID)
	assert.Equal(t, StatusMissing, report.Missing[0].Status)

	require.Len(t, report.OK, 1)
	assert.Equal(t, "Vajra", report.OK[0].Name)
	assert.Nil(t, report.OK[0].Actual)

	assert.Equal(t, Summary{Total: 4, OK: 1, WrongBag: 1, Missing: 1, Unknown: 1}, report.Summary)
}

func TestClassify_ExhaustiveAndExclusive(t *testing.T) {
	catalog := mapCatalog{"a": 1, "b": 2, "c": 3}
	inventory := mapInventory{1: {"inventory"}, 2: {"wardrobe", "wardrobe"}}

	refs := []Reference{
		{Name: "A", Location: "inventory"},
		{Name: "A", Location: "wardrobe"},
		{Name: "B", Location: UnknownLocation},
		{Name: "C", Location: "safe"},
		{Name: "D", Location: "safe"},
		{Name: "b", Location: "wardrobe"},
	}

	report := Classify(catalog, inventory, refs)

	seen := map[string]int{}
	for _, group := range [][]Result{report.OK, report.WrongBag, report.Missing, report.Unknown} {
		for _, r := range group {
			seen[r.Name+"/"+r.Expected]++
		}
	}
	assert.Len(t, seen, len(refs))
	for key, n := range seen {
		assert.Equal(t, 1, n, key)
	}
	assert.Equal(t, len(refs), report.Summary.Total)
	assert.Equal(t, report.Summary.Total,
		report.Summary.OK+report.Summary.WrongBag+report.Summary.Missing+report.Summary.Unknown)

	// The unknown marker is never a real bag.
	assert.Equal(t, "B", report.WrongBag[1].Name)
	assert.Equal(t, []string{"wardrobe", "wardrobe"}, report.WrongBag[1].Actual)
}

func TestClassify_PreservesOrderWithinCategory(t *testing.T) {
	catalog := mapCatalog{}
	refs := []Reference{{Name: "Z"}, {Name: "A"}, {Name: "M"}}

	report := Classify(catalog, mapInventory{}, refs)

	names := []string{}
	for _, r := range report.Unknown {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"Z", "A", "M"}, names)
}

func TestClassify_Suggestions(t *testing.T) {
	catalog := suggestingCatalog{mapCatalog: mapCatalog{"mandau": 1}, suggestion: "Mandau"}

	report := Classify(catalog, mapInventory{}, []Reference{{Name: "Mandua", Location: "wardrobe"}})

	require.Len(t, report.Unknown, 1)
	assert.Equal(t, "Mandau", report.Unknown[0].Suggestion)
}

func TestClassify_EmptyInput(t *testing.T) {
	report := Classify(mapCatalog{}, mapInventory{}, nil)
	assert.NotNil(t, report.OK)
	assert.NotNil(t, report.Unknown)
	assert.Equal(t, Summary{}, report.Summary)
}

func TestAnalyze_Dedupes(t *testing.T) {
	src := &Sources{
		Catalog:   mapCatalog{"mandau": 1},
		Inventory: mapInventory{1: {"wardrobe"}},
		References: []Reference{
			{Name: "Mandau", Location: "wardrobe"},
			{Name: "mandau", Location: "wardrobe"},
		},
	}

	report := Analyze(src)
	assert.Equal(t, 1, report.Summary.Total)
	assert.Equal(t, 1, report.Summary.OK)
}
