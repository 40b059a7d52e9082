package reconcile

import (
	"slices"
	"sort"

	"gear-auditor/core/utils"
)

// CorrectionSet holds at most one correction per lower-cased item name,
// remembering the order in which names were first seen.
type CorrectionSet struct {
	order    []string
	items    map[string]Correction
	expected map[string][]string
}

// NewCorrectionSet returns an empty set.
func NewCorrectionSet() *CorrectionSet {
	return &CorrectionSet{
		items:    make(map[string]Correction),
		expected: make(map[string][]string),
	}
}

// Put records a correction for a mismatched reference. A later call for the
// same name replaces the earlier correction but keeps its position.
func (s *CorrectionSet) Put(ref Reference, location string) {
	key := utils.NameKey(ref.Name)
	if _, ok := s.items[key]; !ok {
		s.order = append(s.order, key)
	}
	s.items[key] = Correction{Name: ref.Name, Location: location}
	if !slices.Contains(s.expected[key], ref.Location) {
		s.expected[key] = append(s.expected[key], ref.Location)
	}
}

// Get returns the correction for name, ignoring case.
func (s *CorrectionSet) Get(name string) (Correction, bool) {
	c, ok := s.items[utils.NameKey(name)]
	return c, ok
}

// Len returns the number of corrected names.
func (s *CorrectionSet) Len() int {
	return len(s.items)
}

// Sorted returns corrections ordered by lower-cased name.
func (s *CorrectionSet) Sorted() []Correction {
	keys := slices.Clone(s.order)
	sort.Strings(keys)
	out := make([]Correction, 0, len(keys))
	for _, key := range keys {
		out = append(out, s.items[key])
	}
	return out
}

// Conflicts lists names whose mismatched references named several bags,
// in first-seen order.
func (s *CorrectionSet) Conflicts() []Conflict {
	var out []Conflict
	for _, key := range s.order {
		if len(s.expected[key]) < 2 {
			continue
		}
		c := s.items[key]
		out = append(out, Conflict{
			Name:     c.Name,
			Expected: slices.Clone(s.expected[key]),
			Chosen:   c.Location,
		})
	}
	return out
}

// BuildCorrections computes the bag every mismatched reference should point
// to: the first inventory location of the item. Unknown names, items held
// nowhere and references without a bag field produce no correction.
// refs should be the raw, non-deduplicated sequence; when a name appears
// with several mismatched bags the last one seen wins.
func BuildCorrections(catalog CatalogIndex, inventory InventoryIndex, refs []Reference) *CorrectionSet {
	set := NewCorrectionSet()

	for _, ref := range refs {
		if ref.Location == UnknownLocation {
			continue
		}
		id, ok := catalog.Lookup(ref.Name)
		if !ok {
			continue
		}
		actual := inventory.Locations(id)
		if len(actual) == 0 {
			continue
		}
		if slices.Contains(actual, ref.Location) {
			continue
		}
		set.Put(ref, actual[0])
	}

	return set
}
