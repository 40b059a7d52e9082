package catalog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"

	"gear-auditor/core/utils"
)

// entryPattern matches `[<index>] = {id=<n>, en="<name>"` anywhere on a line.
// The bracketed index is the ID; the inner id field is ignored.
var entryPattern = regexp.MustCompile(`\[(\d+)\]\s*=\s*\{\s*id\s*=\s*\d+\s*,\s*en\s*=\s*"([^"]+)"`)

// Entry is one item of the catalog.
type Entry struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Catalog maps item names to IDs and back.
type Catalog struct {
	nameToID map[string]int
	idToName map[int]string
	entries  []Entry
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{
		nameToID: make(map[string]int),
		idToName: make(map[int]string),
	}
}

// Load parses the catalog file at path.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	c, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse reads catalog lines from r. Lines that do not hold an entry are skipped.
func Parse(r io.Reader) (*Catalog, error) {
	c := New()

	scanner := bufio.NewScanner(r)
	// items.lua lines carry every language variant and can get long.
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for scanner.Scan() {
		m := entryPattern.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		id, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		c.Add(id, m[2])
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return c, nil
}

// Add records an entry. A later entry with the same name or ID overwrites
// the earlier mapping.
func (c *Catalog) Add(id int, name string) {
	c.nameToID[utils.NameKey(name)] = id
	c.idToName[id] = name
	c.entries = append(c.entries, Entry{ID: id, Name: name})
}

// Lookup returns the ID for name, ignoring case.
func (c *Catalog) Lookup(name string) (int, bool) {
	id, ok := c.nameToID[utils.NameKey(name)]
	return id, ok
}

// Name returns the display name for id in its original case.
func (c *Catalog) Name(id int) (string, bool) {
	name, ok := c.idToName[id]
	return name, ok
}

// Len returns the number of distinct names.
func (c *Catalog) Len() int {
	return len(c.nameToID)
}

// Entries returns every parsed entry in file order.
func (c *Catalog) Entries() []Entry {
	return c.entries
}
