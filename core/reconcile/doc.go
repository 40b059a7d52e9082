// Package reconcile cross-references gearset references against the item
// catalog and a character's inventory.
//
// # Classification
//
// Classify puts every deduplicated reference into exactly one category:
//
//   - ok: the item is in the bag the gearset names
//   - wrong_bag: the item exists, but in other bags
//   - missing: the name is in the catalog but the item is held nowhere
//   - unknown: the name is not in the catalog
//
// Categories keep input order, so identical inputs give identical reports.
//
// # Corrections
//
// BuildCorrections maps each mismatched name to the first bag the inventory
// lists for it. One correction survives per name (last seen wins); names that
// were mismatched against several different bags are reported by
// CorrectionSet.Conflicts so the ambiguity stays visible.
//
// # Caching
//
// SourceCache keeps parsed files between HTTP requests. Entries expire after
// a TTL or as soon as any of the three files changes size or mtime, and
// singleflight stops concurrent misses from parsing the same files twice.
//
// # Usage Example
//
//	report := reconcile.Analyze(&reconcile.Sources{
//	    Catalog:    cat,
//	    Inventory:  inv,
//	    References: refs,
//	})
//	fixes := reconcile.BuildCorrections(cat, inv, refs)
package reconcile
