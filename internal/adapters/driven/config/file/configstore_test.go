package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
	// The file itself appears on first write, not on open.
	assert.NoFileExists(t, store.Path())
}

func TestNewConfigStore_DefaultDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	store, err := NewConfigStore("")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".ladle", "config.toml"), store.Path())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("catalog.base_url", "https://api.test"))

	val, ok := store.Get("catalog.base_url")
	assert.True(t, ok)
	assert.Equal(t, "https://api.test", val)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("catalog.base_url", "https://api.test"))
	require.NoError(t, store.Set("search.debounce_ms", 300))
	require.NoError(t, store.Set("favorites.enabled", true))

	assert.Equal(t, "https://api.test", store.GetString("catalog.base_url"))
	assert.Equal(t, 300, store.GetInt("search.debounce_ms"))
	assert.True(t, store.GetBool("favorites.enabled"))

	// Missing keys return zero values.
	assert.Equal(t, "", store.GetString("missing"))
	assert.Equal(t, 0, store.GetInt("missing"))
	assert.False(t, store.GetBool("missing"))

	// Mismatched types return zero values.
	assert.Equal(t, "", store.GetString("search.debounce_ms"))
	assert.Equal(t, 0, store.GetInt("catalog.base_url"))
	assert.False(t, store.GetBool("catalog.base_url"))
}

func TestConfigStore_PersistsAcrossInstances(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store.Set("catalog.api_key", "secret123"))
	require.NoError(t, store.Set("search.debounce_ms", 600))

	reopened, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "secret123", reopened.GetString("catalog.api_key"))
	assert.Equal(t, 600, reopened.GetInt("search.debounce_ms"))
}

func TestConfigStore_SavesNestedTables(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store.Set("catalog.base_url", "https://api.test"))

	// Dot keys round-trip through a proper TOML table, not a quoted
	// flat key, so the file stays hand-editable.
	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(raw), "[catalog]")
	assert.Contains(t, string(raw), "base_url")
}

func TestConfigStore_LoadFlattensNestedTables(t *testing.T) {
	tmpDir := t.TempDir()
	content := "[search]\ndebounce_ms = 250\n\n[catalog]\nbase_url = \"https://api.test\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, 250, store.GetInt("search.debounce_ms"))
	assert.Equal(t, "https://api.test", store.GetString("catalog.base_url"))
}

func TestConfigStore_LoadMalformedFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("not [valid toml"), 0600))

	_, err := NewConfigStore(tmpDir)
	assert.Error(t, err)
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("catalog.api_key", "secret"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}
