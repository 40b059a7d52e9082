package gearset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"gear-auditor/core/reconcile"
)

// CommentMarker starts a Lua line comment.
const CommentMarker = "--"

// referencePattern matches `name = "<item>"` optionally followed, before the
// next closing brace, by `bag = "<location>"`.
var referencePattern = regexp.MustCompile(`name\s*=\s*"([^"]+)"(?:[^}]*bag\s*=\s*"([^"]+)")?`)

// Load parses the gearset file at path.
func Load(path string) ([]reconcile.Reference, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open gearset: %w", err)
	}
	defer f.Close()

	refs, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read gearset %s: %w", path, err)
	}
	return refs, nil
}

// Parse extracts every item reference from r in file order. Comment lines are
// skipped and a line may hold several references. References without a bag
// get reconcile.UnknownLocation. Nothing is deduplicated.
func Parse(r io.Reader) ([]reconcile.Reference, error) {
	var refs []reconcile.Reference

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if isComment(line) {
			continue
		}

		for _, m := range referencePattern.FindAllStringSubmatch(line, -1) {
			location := m[2]
			if location == "" {
				location = reconcile.UnknownLocation
			}
			refs = append(refs, reconcile.Reference{
				Name:     m[1],
				Location: location,
				Line:     lineNo,
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return refs, nil
}

func isComment(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), CommentMarker)
}
