package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csheth/sessionnote/internal/note"
	"github.com/csheth/sessionnote/internal/store"
)

func TestDefaults(t *testing.T) {
	v := New()
	cfg, err := Decode(v)
	require.NoError(t, err)

	assert.Equal(t, store.BackendDiskv, cfg.Storage.Backend)
	assert.NotEmpty(t, cfg.Storage.Path)
	assert.True(t, cfg.AltScreen)
	assert.False(t, cfg.Log.Debug)
	assert.Equal(t, note.ModeTelephone, cfg.Defaults.Mode)
	assert.Equal(t, note.Duration90, cfg.Defaults.Duration)
	assert.Equal(t, note.DefaultPlan, cfg.Defaults.Plan)
}

func TestReadFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := `storage:
  backend: SQLite
  path: ` + dir + `
log:
  debug: true
ui:
  altscreen: false
note:
  mode: in person
  duration: 60
  plan: "Continue CBT."
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	v := New()
	require.NoError(t, Read(v, path))
	cfg, err := Decode(v)
	require.NoError(t, err)

	assert.Equal(t, store.BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, dir, cfg.Storage.Path)
	assert.True(t, cfg.Log.Debug)
	assert.False(t, cfg.AltScreen)
	assert.Equal(t, note.ModeInPerson, cfg.Defaults.Mode)
	assert.Equal(t, note.Duration60, cfg.Defaults.Duration)
	assert.Equal(t, "Continue CBT.", cfg.Defaults.Plan)
}

func TestReadMissingDefaultFileIsFine(t *testing.T) {
	t.Setenv("SESSIONNOTE_CONFIG_PATH", t.TempDir())
	chdir(t, t.TempDir())

	v := New()
	assert.NoError(t, Read(v, ""))
}

func TestReadMissingExplicitFileFails(t *testing.T) {
	v := New()
	assert.Error(t, Read(v, filepath.Join(t.TempDir(), "nope.yaml")))
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("SESSIONNOTE_STORAGE_BACKEND", "file")
	t.Setenv("SESSIONNOTE_NOTE_DURATION", "30")

	cfg, err := Decode(New())
	require.NoError(t, err)
	assert.Equal(t, store.BackendFile, cfg.Storage.Backend)
	assert.Equal(t, note.Duration30, cfg.Defaults.Duration)
}

func TestDecodeRejectsInvalidDefaults(t *testing.T) {
	v := New()
	v.Set(KeyMode, "carrier pigeon")
	_, err := Decode(v)
	assert.ErrorIs(t, err, note.ErrInvalidMode)

	v = New()
	v.Set(KeyDuration, 45)
	_, err = Decode(v)
	assert.ErrorIs(t, err, note.ErrInvalidDuration)
}

func TestHomeExpansion(t *testing.T) {
	v := New()
	v.Set(KeyStorePath, "~/notes")
	cfg, err := Decode(v)
	require.NoError(t, err)
	assert.NotContains(t, cfg.Storage.Path, "~")
	assert.Equal(t, "notes", filepath.Base(cfg.Storage.Path))
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("SESSIONNOTE_TEST_DOTENV=loaded\n"), 0o600))
	t.Setenv("SESSIONNOTE_TEST_DOTENV", "")
	os.Unsetenv("SESSIONNOTE_TEST_DOTENV")

	require.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env"), path))
	assert.Equal(t, "loaded", os.Getenv("SESSIONNOTE_TEST_DOTENV"))
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
