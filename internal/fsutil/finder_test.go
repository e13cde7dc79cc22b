package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindFiles(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "nested", "deeper"), 0o755))
	for _, name := range []string{"b.hcl", "a.hcl", "notes.txt", "z.hcl.json", "nested/c.hcl", "nested/deeper/d.hcl"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte("# test\n"), 0o600))
	}

	// --- Act ---
	files, err := FindFiles(root, ".hcl", ".hcl.json")

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(root, "a.hcl"),
		filepath.Join(root, "b.hcl"),
		filepath.Join(root, "nested", "c.hcl"),
		filepath.Join(root, "nested", "deeper", "d.hcl"),
		filepath.Join(root, "z.hcl.json"),
	}, files)
}

func TestFindFiles_MissingRoot(t *testing.T) {
	t.Parallel()

	_, err := FindFiles(filepath.Join(t.TempDir(), "absent"), ".hcl")
	require.Error(t, err)
}

func TestFindFiles_NoExtensionPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { _, _ = FindFiles(".") })
}

func TestHasExtension(t *testing.T) {
	t.Parallel()

	require.True(t, HasExtension("lines.hcl", ".hcl", ".hcl.json"))
	require.True(t, HasExtension("lines.hcl.json", ".hcl", ".hcl.json"))
	require.False(t, HasExtension("lines.json", ".hcl", ".hcl.json"))
	require.False(t, HasExtension("lines.hcl"))
}
