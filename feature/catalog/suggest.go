package catalog

import (
	"unicode/utf8"

	"gear-auditor/core/utils"

	"github.com/agnivade/levenshtein"
)

// Suggest returns the catalog name closest to name by edit distance, for
// reporting typos in gearsets. Ties go to the name that appears first.
func (c *Catalog) Suggest(name string) (string, bool) {
	key := utils.NameKey(name)
	if key == "" {
		return "", false
	}

	keyLen := utf8.RuneCountInString(key)
	limit := distanceLimit(keyLen)
	best := ""
	bestDist := limit + 1

	for _, e := range c.entries {
		cand := utils.NameKey(e.Name)
		if absDiff(utf8.RuneCountInString(cand), keyLen) > limit {
			continue
		}
		if dist := levenshtein.ComputeDistance(key, cand); dist < bestDist {
			best = e.Name
			bestDist = dist
			if dist == 0 {
				break
			}
		}
	}

	return best, best != ""
}

// distanceLimit scales the allowed edits with the name length.
func distanceLimit(n int) int {
	switch {
	case n <= 4:
		return 1
	case n <= 12:
		return 2
	default:
		return 3
	}
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
