package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mapLookup(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestDefaults(t *testing.T) {
	c, err := fromLookup(mapLookup(map[string]string{
		EnvSessionFile: filepath.Join(t.TempDir(), "missing"),
	}))
	require.NoError(t, err)
	assert.Equal(t, &Config{Year: 2025, InputDir: ".", DB: DefaultDB}, c)
}

func TestSessionFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aoc.session")
	require.NoError(t, os.WriteFile(path, []byte("  cafe\n"), 0600))

	c, err := fromLookup(mapLookup(map[string]string{EnvSessionFile: path}))
	require.NoError(t, err)
	assert.Equal(t, "cafe", c.Session)

	// An explicit session wins over the file.
	c, err = fromLookup(mapLookup(map[string]string{EnvSessionFile: path, EnvSession: "beef"}))
	require.NoError(t, err)
	assert.Equal(t, "beef", c.Session)
}

func TestEmptyDBDisablesHistory(t *testing.T) {
	c, err := fromLookup(mapLookup(map[string]string{
		EnvDB:          "",
		EnvSessionFile: filepath.Join(t.TempDir(), "missing"),
	}))
	require.NoError(t, err)
	assert.Empty(t, c.DB)
}

func TestBadYear(t *testing.T) {
	_, err := fromLookup(mapLookup(map[string]string{EnvYear: "twenty"}))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(
		"AOC_YEAR=2024\n"+
			"AOC_INPUT_DIR="+dir+"\n"+
			"AOC_SESSION=fromfile\n"+
			"AOC_DB=hist.sqlite3\n"), 0600))
	t.Setenv(EnvDB, "env.sqlite3")

	c, err := Load(envFile)
	require.NoError(t, err)
	assert.Equal(t, 2024, c.Year)
	assert.Equal(t, dir, c.InputDir)
	assert.Equal(t, "fromfile", c.Session)
	assert.Equal(t, "env.sqlite3", c.DB, "environment should override the file")
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv(EnvSessionFile, filepath.Join(t.TempDir(), "missing"))
	c, err := Load(filepath.Join(t.TempDir(), "nope.env"))
	require.NoError(t, err)
	assert.NotNil(t, c)
}
