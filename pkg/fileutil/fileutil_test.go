package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeJSON(t *testing.T) {
	v := map[string]string{"theme": "Retard de livraison <urgent> & équipe"}

	compact, err := EncodeJSON(v, false)
	require.NoError(t, err)
	assert.Equal(t, "{\"theme\":\"Retard de livraison <urgent> & équipe\"}\n", string(compact))

	pretty, err := EncodeJSON(v, true)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"theme\": \"Retard de livraison <urgent> & équipe\"\n}\n", string(pretty))
}

func TestWriteJSONFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "stats_dpd.json")

	require.NoError(t, WriteJSONFileAtomic(path, []int{1, 2}, false))
	assert.True(t, FileExists(path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[1,2]\n", string(b))

	require.NoError(t, WriteJSONFileAtomic(path, []int{3}, false))
	b, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[3]\n", string(b))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestWriteJSONFileAtomicUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	err := WriteJSONFileAtomic(path, make(chan int), false)
	assert.Error(t, err)
	assert.False(t, FileExists(path))
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, EnsureDir(dir))
	assert.True(t, FileExists(dir))
	assert.NoError(t, EnsureDir(""))
}
