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
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
	assert.Empty(t, store.Keys())
}

func TestNewConfigStore_DefaultDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := NewConfigStore("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".classe", "config.toml"), store.Path())

	info, err := os.Stat(filepath.Join(home, ".classe"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewConfigStore_NestedDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	store, err := NewConfigStore(dir)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}

func TestNewConfigStore_MkdirAllError(t *testing.T) {
	store, err := NewConfigStore("/dev/null/cannot/create/dirs")

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNewConfigStore_CorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("not toml {{{[["), 0o600))

	store, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestConfigStore_ReadsNestedTables(t *testing.T) {
	tmpDir := t.TempDir()
	content := "[classifier]\nendpoint_base_url = \"http://10.0.0.5:5000\"\ntimeout_seconds = 15\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0o600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "http://10.0.0.5:5000", store.GetString("classifier.endpoint_base_url"))
	assert.Equal(t, 15, store.GetInt("classifier.timeout_seconds"))
	assert.Equal(t, []string{"classifier.endpoint_base_url", "classifier.timeout_seconds"}, store.Keys())
}

func TestConfigStore_WritesNestedTables(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("classifier.endpoint_base_url", "http://localhost:8080"))
	require.NoError(t, store.Set("classifier.timeout_seconds", 20))

	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(raw), "[classifier]")
	assert.Contains(t, string(raw), "http://localhost:8080")

	reloaded, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", reloaded.GetString("classifier.endpoint_base_url"))
	assert.Equal(t, 20, reloaded.GetInt("classifier.timeout_seconds"))
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("str", "hello"))
	require.NoError(t, store.Set("num", 42))
	require.NoError(t, store.Set("flag", true))
	require.NoError(t, store.Set("list", []string{".txt", ".pdf"}))

	assert.Equal(t, "hello", store.GetString("str"))
	assert.Empty(t, store.GetString("num"))
	assert.Equal(t, 42, store.GetInt("num"))
	assert.Zero(t, store.GetInt("str"))
	assert.True(t, store.GetBool("flag"))
	assert.False(t, store.GetBool("str"))
	assert.Equal(t, []string{".txt", ".pdf"}, store.GetStringSlice("list"))
	assert.Nil(t, store.GetStringSlice("missing"))

	_, ok := store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_SliceSurvivesReload(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store.Set("list", []string{"a", "b"}))

	reloaded, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, reloaded.GetStringSlice("list"))
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("k", "v"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestConfigStore_Set_UnmarshallableValueRollsBack(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("keep", "old"))

	err = store.Set("channel", make(chan int))
	assert.Error(t, err)

	_, ok := store.Get("channel")
	assert.False(t, ok)
	assert.Equal(t, "old", store.GetString("keep"))
}

func TestConfigStore_Set_WriteErrorRestoresPrevious(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("classifier.timeout_seconds", 5))

	require.NoError(t, os.Remove(store.Path()))
	require.NoError(t, os.Mkdir(store.Path(), 0o700))

	err = store.Set("classifier.timeout_seconds", 9)

	assert.Error(t, err)
	assert.Equal(t, 5, store.GetInt("classifier.timeout_seconds"))
}

func TestConfigStore_Save_Explicit(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	store.mu.Lock()
	store.data["manual.key"] = "manual_value"
	store.mu.Unlock()

	require.NoError(t, store.Save())

	reloaded, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "manual_value", reloaded.GetString("manual.key"))
}

func TestConfigStore_Load_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), nil, 0o600))

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	assert.Empty(t, store.Keys())
}

func TestConfigStore_Load_InvalidTOMLAfterStart(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("valid", "data"))

	require.NoError(t, os.WriteFile(store.Path(), []byte("invalid ][}{"), 0o600))

	assert.Error(t, store.Load())
}

func TestNestMap(t *testing.T) {
	tests := []struct {
		name string
		flat map[string]any
		want map[string]any
	}{
		{
			name: "single level",
			flat: map[string]any{"debug": true},
			want: map[string]any{"debug": true},
		},
		{
			name: "shared table",
			flat: map[string]any{"classifier.a": 1, "classifier.b": 2},
			want: map[string]any{"classifier": map[string]any{"a": 1, "b": 2}},
		},
		{
			name: "value shadows table",
			flat: map[string]any{"x": 1, "x.y": 2},
			want: map[string]any{"x": 1, "x.y": 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nestMap(tt.flat))
		})
	}
}

func TestFlattenMap(t *testing.T) {
	nested := map[string]any{
		"classifier": map[string]any{
			"endpoint_base_url": "http://x",
			"retry":             map[string]any{"max": int64(3)},
		},
		"top": "v",
	}

	assert.Equal(t, map[string]any{
		"classifier.endpoint_base_url": "http://x",
		"classifier.retry.max":         int64(3),
		"top":                          "v",
	}, flattenMap(nested, ""))
}
