package inventory

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidCharacter is returned when a character name cannot be used as a file name.
var ErrInvalidCharacter = errors.New("invalid character name")

var (
	// sectionPattern matches a bag header: ["wardrobe2"] = {
	sectionPattern = regexp.MustCompile(`^\s*\["([^"]+)"\]\s*=\s*\{`)
	// itemPattern matches an item count: ["16480"] = 1
	itemPattern = regexp.MustCompile(`^\s*\["(\d+)"\]\s*=\s*(\d+)`)
)

// Inventory maps item IDs to the bags holding them.
type Inventory struct {
	locations map[int][]string
	sections  []string
}

// New returns an empty inventory.
func New() *Inventory {
	return &Inventory{locations: make(map[int][]string)}
}

// PathFor returns the findAll dump for character inside dir.
func PathFor(dir, character string) (string, error) {
	if character == "" || character == "." || character == ".." ||
		strings.ContainsAny(character, `/\`) || strings.Contains(character, "..") {
		return "", fmt.Errorf("%w: %q", ErrInvalidCharacter, character)
	}
	return filepath.Join(dir, character+".lua"), nil
}

// Load parses the inventory file at path.
func Load(path string) (*Inventory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open inventory: %w", err)
	}
	defer f.Close()

	inv, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory %s: %w", path, err)
	}
	return inv, nil
}

// Parse reads a findAll dump from r. Item lines count towards the most
// recent bag header; lines before the first header are ignored.
func Parse(r io.Reader) (*Inventory, error) {
	inv := New()
	current := ""

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()

		if m := sectionPattern.FindStringSubmatch(line); m != nil {
			current = m[1]
			inv.sections = append(inv.sections, current)
			continue
		}
		if current == "" {
			continue
		}

		m := itemPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		id, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		qty, err := strconv.Atoi(m[2])
		if err != nil || qty <= 0 {
			continue
		}
		inv.Add(id, current)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return inv, nil
}

// Add records one stack of item id in location. Repeats are kept.
func (inv *Inventory) Add(id int, location string) {
	inv.locations[id] = append(inv.locations[id], location)
}

// Locations returns the bags holding id in file order, or nil.
func (inv *Inventory) Locations(id int) []string {
	return inv.locations[id]
}

// Len returns the number of distinct item IDs held.
func (inv *Inventory) Len() int {
	return len(inv.locations)
}

// Sections returns the bag headers in file order.
func (inv *Inventory) Sections() []string {
	return inv.sections
}
