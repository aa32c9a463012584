package textures

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "textures.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadTableSizesToMaxIDPlusOne(t *testing.T) {
	path := writeManifest(t, "textures:\n  - id: 1\n    texture: 7\n  - id: 3\n    texture: 2\n")
	table, err := LoadTable(path)
	require.NoError(t, err)
	require.Len(t, table, 4)
	require.Equal(t, float32(0), table[0])
	require.Equal(t, float32(7), table[1])
	require.Equal(t, float32(0), table[2])
	require.Equal(t, float32(2), table[3])
}

func TestLoadTableMissingFile(t *testing.T) {
	_, err := LoadTable(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadTableRejectsNegativeID(t *testing.T) {
	path := writeManifest(t, "textures:\n  - id: -1\n    texture: 1\n")
	_, err := LoadTable(path)
	require.Error(t, err)
}

func TestLoadTableEmptyManifest(t *testing.T) {
	path := writeManifest(t, "textures: []\n")
	table, err := LoadTable(path)
	require.NoError(t, err)
	require.Len(t, table, 1)
}
