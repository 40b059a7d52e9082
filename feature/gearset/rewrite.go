package gearset

import (
	"bytes"
	"regexp"

	"gear-auditor/core/reconcile"
)

// bagPattern captures a reference that carries a bag field:
// 1 prefix, 2 item name, 3 text up to the bag value, 4 bag value, 5 closing quote.
var bagPattern = regexp.MustCompile(`(name\s*=\s*")([^"]+)("[^}]*?bag\s*=\s*")([^"]+)(")`)

// Rewrite returns content with the bag value of every corrected reference
// replaced. Only the bag substrings change: comment lines, line endings and
// all other bytes are copied through untouched. The second return value
// counts rewritten occurrences.
func Rewrite(content []byte, corrections *reconcile.CorrectionSet) ([]byte, int) {
	if corrections == nil || corrections.Len() == 0 {
		return bytes.Clone(content), 0
	}

	out := make([]byte, 0, len(content))
	changes := 0

	for len(content) > 0 {
		end := bytes.IndexByte(content, '\n')
		var line []byte
		if end < 0 {
			line, content = content, nil
		} else {
			line, content = content[:end+1], content[end+1:]
		}

		if isComment(string(line)) {
			out = append(out, line...)
			continue
		}

		rewritten, n := rewriteLine(line, corrections)
		out = append(out, rewritten...)
		changes += n
	}

	return out, changes
}

func rewriteLine(line []byte, corrections *reconcile.CorrectionSet) ([]byte, int) {
	matches := bagPattern.FindAllSubmatchIndex(line, -1)
	if matches == nil {
		return line, 0
	}

	var out []byte
	last := 0
	changes := 0

	for _, m := range matches {
		name := string(line[m[4]:m[5]])
		bagStart, bagEnd := m[8], m[9]

		c, ok := corrections.Get(name)
		if !ok || string(line[bagStart:bagEnd]) == c.Location {
			continue
		}

		out = append(out, line[last:bagStart]...)
		out = append(out, c.Location...)
		last = bagEnd
		changes++
	}

	if changes == 0 {
		return line, 0
	}
	out = append(out, line[last:]...)
	return out, changes
}
