package config

import "time"

// Files locates the three Windower data files the auditor cross-references.
type Files struct {
	// Catalog is the item database (res/items.lua).
	Catalog string `mapstructure:"catalog" default:"C:/windower/res/items.lua"`
	// InventoryDir holds one findAll dump per character.
	InventoryDir string `mapstructure:"inventory_dir" default:"C:/windower/addons/findAll/data"`
	// Character selects <InventoryDir>/<Character>.lua when no character is given.
	Character string `mapstructure:"character" default:"player"`
	// Gearset is the GearSwap job file that gets audited and corrected.
	Gearset string `mapstructure:"gearset" default:"C:/windower/addons/GearSwap/data/thf.lua"`
	// CacheTTLSeconds controls how long the HTTP server keeps parsed files around.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"60"`
}

// CacheTTL returns the source cache lifetime as a duration.
func (f Files) CacheTTL() time.Duration {
	if f.CacheTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(f.CacheTTLSeconds) * time.Second
}
