package reconcile

// UnknownLocation marks a gear reference that carries no bag field.
const UnknownLocation = "?"

// Reference is one item occurrence in a gearset file.
type Reference struct {
	// Name is the item name exactly as written in the gearset.
	Name string `json:"name" yaml:"name"`

	// Location is the expected bag, or UnknownLocation when none is given.
	Location string `json:"location" yaml:"location"`

	// Line is the 1-based line the occurrence was found on.
	Line int `json:"line,omitempty" yaml:"line,omitempty"`
}

// CatalogIndex resolves item names to catalog IDs, ignoring case.
type CatalogIndex interface {
	Lookup(name string) (int, bool)
}

// Suggester is implemented by catalogs that can propose a near match
// for a name they do not know.
type Suggester interface {
	Suggest(name string) (string, bool)
}

// InventoryIndex returns the locations holding at least one unit of an item,
// in the order they appear in the inventory dump.
type InventoryIndex interface {
	Locations(id int) []string
}

// Status is the classification of a gear reference.
type Status string

const (
	// StatusOK means the item sits in the expected bag.
	StatusOK Status = "ok"
	// StatusWrongBag means the item exists, but not in the expected bag.
	StatusWrongBag Status = "wrong_bag"
	// StatusMissing means the item is known but held nowhere.
	StatusMissing Status = "missing"
	// StatusUnknown means the name is not in the catalog.
	StatusUnknown Status = "unknown"
)

// Result is the classification outcome for one deduplicated reference.
type Result struct {
	// Name is the item name as written in the gearset.
	Name string `json:"name" yaml:"name"`

	// Expected is the bag named by the gearset.
	Expected string `json:"expected" yaml:"expected"`

	// ID is the catalog ID. Zero for unknown names.
	ID int `json:"id,omitempty" yaml:"id,omitempty"`

	// Status is the category the reference fell into.
	Status Status `json:"status" yaml:"status"`

	// Actual lists every bag holding the item. Only set for wrong bags.
	Actual []string `json:"actual,omitempty" yaml:"actual,omitempty"`

	// Suggestion is the closest catalog name for unknown names, if any.
	Suggestion string `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

// Summary provides aggregate counts for a report.
type Summary struct {
	Total    int `json:"total" yaml:"total"`
	OK       int `json:"ok" yaml:"ok"`
	WrongBag int `json:"wrong_bag" yaml:"wrong_bag"`
	Missing  int `json:"missing" yaml:"missing"`
	Unknown  int `json:"unknown" yaml:"unknown"`
}

// Report groups classified references by category, each in input order.
type Report struct {
	OK       []Result `json:"ok" yaml:"ok"`
	WrongBag []Result `json:"wrong_bag" yaml:"wrong_bag"`
	Missing  []Result `json:"missing" yaml:"missing"`
	Unknown  []Result `json:"unknown" yaml:"unknown"`
	Summary  Summary  `json:"summary" yaml:"summary"`
}

// Correction is the bag an item should be moved to in the gearset.
type Correction struct {
	// Name is the item name as last seen in the gearset.
	Name string `json:"name" yaml:"name"`

	// Location is the first inventory bag holding the item.
	Location string `json:"location" yaml:"location"`
}

// Conflict records an item whose mismatched references named more than one bag.
// Only one correction per name survives, so such items deserve a second look.
type Conflict struct {
	Name     string   `json:"name" yaml:"name"`
	Expected []string `json:"expected" yaml:"expected"`
	Chosen   string   `json:"chosen" yaml:"chosen"`
}

// Sources bundles the parsed inputs of one audit.
type Sources struct {
	Catalog    CatalogIndex
	Inventory  InventoryIndex
	References []Reference
}
