package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NameKey returns the case-insensitive lookup key for an item name.
// A Caser keeps state between calls, so a fresh one is built each time.
func NameKey(name string) string {
	return cases.Lower(language.Und).String(name)
}

// Quote renders s as a repr-style literal: single quotes,
// or double quotes when s holds a single quote but no double quote.
func Quote(s string) string {
	q := byte('\'')
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		q = '"'
	}

	var b strings.Builder
	b.WriteByte(q)
	for _, r := range s {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == rune(q):
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte(q)
	return b.String()
}

// JoinLocations renders a location list as "['a', 'b']".
func JoinLocations(locations []string) string {
	quoted := make([]string, len(locations))
	for i, l := range locations {
		quoted[i] = Quote(l)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
