package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "player", cfg.Files.Character)
	assert.Equal(t, "C:/windower/res/items.lua", cfg.Files.Catalog)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.False(t, cfg.Storage.Enabled)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, time.Minute, cfg.Files.CacheTTL())
}

func TestLoadConfig_EnvFile(t *testing.T) {
	dir := t.TempDir()
	env := "FILES_GEARSET=/tmp/thf.lua\nFILES_CHARACTER=Mithra\nFILES_CACHE_TTL_SECONDS=0\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("FILES_GEARSET")
		os.Unsetenv("FILES_CHARACTER")
		os.Unsetenv("FILES_CACHE_TTL_SECONDS")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/thf.lua", cfg.Files.Gearset)
	assert.Equal(t, "Mithra", cfg.Files.Character)
	assert.Equal(t, time.Duration(0), cfg.Files.CacheTTL())
}
