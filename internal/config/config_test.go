package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFull(t *testing.T) {
	cfg, err := Parse([]byte(`
[store]
backend = "SQLite"
path = "/tmp/cms.db"
entry = "post-42"
field = "faq"

[ui]
theme = "neon"
`))
	require.NoError(t, err)
	assert.Equal(t, Config{
		Store: StoreConfig{Backend: BackendSQLite, Path: "/tmp/cms.db", Entry: "post-42", Field: "faq"},
		UI:    UIConfig{Theme: "neon"},
	}, cfg)
}

func TestParseFillsDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`[ui]
theme = "mono"`))
	require.NoError(t, err)
	assert.Equal(t, BackendFile, cfg.Store.Backend)
	assert.Equal(t, "field.json", cfg.Store.Path)
	assert.Equal(t, "mono", cfg.UI.Theme)

	cfg, err = Parse([]byte(`[store]
backend = "sqlite"`))
	require.NoError(t, err)
	assert.Equal(t, "fieldlist.db", cfg.Store.Path)
	assert.Equal(t, "default", cfg.Store.Entry)
	assert.Equal(t, "items", cfg.Store.Field)
}

func TestSwitchBackendMovesDefaultPath(t *testing.T) {
	s := Default().Store
	s.SwitchBackend("SQLite")
	assert.Equal(t, BackendSQLite, s.Backend)
	assert.Equal(t, DefaultSQLitePath, s.Path)

	s.SwitchBackend(BackendFile)
	assert.Equal(t, DefaultFilePath, s.Path)

	s = StoreConfig{Backend: BackendFile, Path: "faq.json"}
	s.SwitchBackend(BackendSQLite)
	assert.Equal(t, "faq.json", s.Path, "explicit paths are kept")
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte(`[store]
backend = "postgres"`))
	assert.Error(t, err)

	_, err = Parse([]byte(`[store`))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromDisk(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(p, []byte(`[store]
path = "faq.yaml"`), 0o644))

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "faq.yaml", cfg.Store.Path)
	assert.Equal(t, BackendFile, cfg.Store.Backend)
}

func TestDefaultPathHonoursXDG(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" || runtime.GOOS == "ios" || runtime.GOOS == "plan9" {
		t.Skip("XDG_CONFIG_HOME is not used on " + runtime.GOOS)
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "fieldlist", "config.toml"), p)
}
