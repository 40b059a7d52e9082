package files

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackup(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "thf.lua")
	require.NoError(t, os.WriteFile(src, []byte("sets.idle = {}\n"), 0o600))
	mtime := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(src, mtime, mtime))

	dst, err := Backup(src)
	require.NoError(t, err)
	assert.Equal(t, src+".bak", dst)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "sets.idle = {}\n", string(data))

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(mtime))
	if runtime.GOOS != "windows" {
		assert.Equal(t, fs.FileMode(0o600), info.Mode().Perm())
	}
}

func TestBackup_MissingSource(t *testing.T) {
	dir := t.TempDir()
	_, err := Backup(filepath.Join(dir, "missing.lua"))
	assert.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, statErr := os.Stat(filepath.Join(dir, "missing.lua.bak"))
	assert.ErrorIs(t, statErr, fs.ErrNotExist)
}

func TestWriteAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "thf.lua")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o640))

	require.NoError(t, WriteAtomic(path, []byte("new")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, fs.FileMode(0o640), info.Mode().Perm())
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not be left behind")
}

func TestWriteAtomic_NewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fresh.lua")
	require.NoError(t, WriteAtomic(path, []byte("x")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
}

func TestWriteAtomic_FollowsSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need extra privileges on windows")
	}
	dir := t.TempDir()
	target := filepath.Join(dir, "repo_thf.lua")
	link := filepath.Join(dir, "thf.lua")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0o600))
	require.NoError(t, os.Symlink(target, link))

	require.NoError(t, WriteAtomic(link, []byte("new")))

	info, err := os.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&fs.ModeSymlink, "link must stay a symlink")

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))

	targetInfo, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0o600), targetInfo.Mode().Perm())
}

func TestWriteAtomic_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "thf.lua")
	assert.Error(t, WriteAtomic(path, []byte("x")))
}

func TestStat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.lua")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0o644))

	fp, err := Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(3), fp.Size)
	assert.Equal(t, path, fp.Path)

	_, err = Stat(path + ".missing")
	assert.Error(t, err)
}
