// Package gearset reads and corrects GearSwap job files.
//
// Gear sets are Lua tables whose entries name an item and, optionally, the
// bag it should be taken from:
//
//	sets.engaged = {
//	    main = { name = "Mandau", bag = "wardrobe2" },
//	    sub  = { name = "Vajra" },
//	}
//
// Parse lists every reference in file order; Rewrite and Correct change bag
// values in place. Lines whose first non-blank characters are "--" are
// never read or modified.
package gearset
