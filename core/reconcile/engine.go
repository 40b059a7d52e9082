package reconcile

import (
	"slices"

	"gear-auditor/core/utils"
)

// Dedupe drops repeated references with the same lower-cased name and
// location. The first occurrence wins and relative order is kept.
func Dedupe(refs []Reference) []Reference {
	type key struct{ name, location string }

	seen := make(map[key]struct{}, len(refs))
	unique := make([]Reference, 0, len(refs))
	for _, ref := range refs {
		k := key{utils.NameKey(ref.Name), ref.Location}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		unique = append(unique, ref)
	}
	return unique
}

// Classify sorts each reference into exactly one category.
// References are expected to be deduplicated already.
func Classify(catalog CatalogIndex, inventory InventoryIndex, refs []Reference) *Report {
	report := &Report{
		OK:       []Result{},
		WrongBag: []Result{},
		Missing:  []Result{},
		Unknown:  []Result{},
	}

	suggester, _ := catalog.(Suggester)

	for _, ref := range refs {
		result := classifyOne(catalog, inventory, ref)

		switch result.Status {
		case StatusUnknown:
			if suggester != nil {
				if s, ok := suggester.Suggest(ref.Name); ok {
					result.Suggestion = s
				}
			}
			report.Unknown = append(report.Unknown, result)
		case StatusMissing:
			report.Missing = append(report.Missing, result)
		case StatusOK:
			report.OK = append(report.OK, result)
		case StatusWrongBag:
			report.WrongBag = append(report.WrongBag, result)
		}
	}

	report.Summary = Summary{
		OK:       len(report.OK),
		WrongBag: len(report.WrongBag),
		Missing:  len(report.Missing),
		Unknown:  len(report.Unknown),
	}
	report.Summary.Total = report.Summary.OK + report.Summary.WrongBag + report.Summary.Missing + report.Summary.Unknown

	return report
}

// Analyze deduplicates the gearset references and classifies them.
func Analyze(src *Sources) *Report {
	return Classify(src.Catalog, src.Inventory, Dedupe(src.References))
}

func classifyOne(catalog CatalogIndex, inventory InventoryIndex, ref Reference) Result {
	result := Result{Name: ref.Name, Expected: ref.Location}

	id, ok := catalog.Lookup(ref.Name)
	if !ok {
		result.Status = StatusUnknown
		return result
	}
	result.ID = id

	actual := inventory.Locations(id)
	switch {
	case len(actual) == 0:
		result.Status = StatusMissing
	case slices.Contains(actual, ref.Location):
		result.Status = StatusOK
	default:
		result.Status = StatusWrongBag
		result.Actual = slices.Clone(actual)
	}
	return result
}
