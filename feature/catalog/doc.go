// Package catalog parses the Windower item database (res/items.lua).
//
// Each entry line looks like:
//
//	[16480] = {id=16480,en="Thief's Knife",ja="...",...},
//
// Only the bracketed index and the en= name are read. Every other line
// (header, footer, comments, anything malformed) is skipped without error,
// so the parser tolerates whatever else the file carries.
//
// Names are matched case-insensitively; Suggest proposes the nearest name
// for references the catalog does not know.
package catalog
