package audit

import (
	"os"
	"path/filepath"
	"testing"

	"gear-auditor/core/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

const testCatalog = `return {
    [100] = {id=100,en="Thief's Knife",ja="シーフナイフ"},
    [200] = {id=200,en="Vajra"},
    [300] = {id=300,en="Mandau"},
    [400] = {id=400,en="Odium"},
}
`

const testInventory = `return {
    ["inventory"] = {
        ["200"] = 1,
    },
    ["wardrobe1"] = {
        ["100"] = 1,
        ["400"] = 0,
    },
}
`

const testGearset = `sets.engaged = {
    main = { name = "Thief's Knife", bag = "wardrobe2" },
    sub = { name = "Vajra", bag = "inventory" },
    range = { name = "Odium", bag = "wardrobe1" },
    ammo = { name = "Unknown Thing", bag = "inventory" },
    head = { name = "Mandau" },
    -- main = { name = "Thief's Knife", bag = "wardrobe2" },
}
`

// writeFixtures lays out a Windower tree in a temp dir and returns matching file settings.
func writeFixtures(t *testing.T) config.Files {
	t.Helper()
	dir := t.TempDir()

	invDir := filepath.Join(dir, "findAll")
	require.NoError(t, os.MkdirAll(invDir, 0o755))

	files := config.Files{
		Catalog:         filepath.Join(dir, "items.lua"),
		InventoryDir:    invDir,
		Character:       "player",
		Gearset:         filepath.Join(dir, "thf.lua"),
		CacheTTLSeconds: 60,
	}

	require.NoError(t, os.WriteFile(files.Catalog, []byte(testCatalog), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(invDir, "player.lua"), []byte(testInventory), 0o644))
	require.NoError(t, os.WriteFile(files.Gearset, []byte(testGearset), 0o644))

	return files
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}
