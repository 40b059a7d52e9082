package catalog

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalog = `-- Automatically generated file: Items

return {
    [100] = {id=100, en="Thief's Knife"},
    [16480] = {id=16480,en="Mandau",ja="マンダウ",enl="Mandau",category="Weapon"},
    [20583] = {id=20583,en="Vajra",ja="ヴァジュラ"},
    [ 7] = {id=7, en="Broken"},
    [25] = {id=25},
    this is not an entry
}
`

func TestParse(t *testing.T) {
	c, err := Parse(strings.NewReader(sampleCatalog))
	require.NoError(t, err)

	assert.Equal(t, 3, c.Len())

	id, ok := c.Lookup("thief's knife")
	assert.True(t, ok)
	assert.Equal(t, 100, id)

	id, ok = c.Lookup("MANDAU")
	assert.True(t, ok)
	assert.Equal(t, 16480, id)

	name, ok := c.Name(20583)
	assert.True(t, ok)
	assert.Equal(t, "Vajra", name)

	_, ok = c.Lookup("Broken")
	assert.False(t, ok)
	_, ok = c.Name(25)
	assert.False(t, ok)
}

func TestParse_IndexIsAuthoritative(t *testing.T) {
	c, err := Parse(strings.NewReader(`[5] = {id=9999, en="Odd Entry"}`))
	require.NoError(t, err)

	id, ok := c.Lookup("Odd Entry")
	require.True(t, ok)
	assert.Equal(t, 5, id)
	_, ok = c.Name(9999)
	assert.False(t, ok)
}

func TestParse_TablesAreInverse(t *testing.T) {
	c, err := Parse(strings.NewReader(sampleCatalog))
	require.NoError(t, err)

	for _, e := range c.Entries() {
		id, ok := c.Lookup(strings.ToUpper(e.Name))
		require.True(t, ok)
		name, ok := c.Name(id)
		require.True(t, ok)
		assert.True(t, strings.EqualFold(e.Name, name))
	}
}

func TestParse_Empty(t *testing.T) {
	c, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Entries())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.lua")
	require.NoError(t, os.WriteFile(path, []byte(sampleCatalog), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.lua"))
	assert.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestSuggest(t *testing.T) {
	c, err := Parse(strings.NewReader(sampleCatalog))
	require.NoError(t, err)

	tests := []struct {
		name  string
		query string
		want  string
		found bool
	}{
		{"Transposition", "Mandua", "Mandau", true},
		{"MissingApostrophe", "Thiefs Knife", "Thief's Knife", true},
		{"CaseOnly", "VAJRA", "Vajra", true},
		{"TooFar", "Excalibur", "", false},
		{"Empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.Suggest(tt.query)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
