package testing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationFiles_Default(t *testing.T) {
	files, err := MigrationFiles("")
	require.NoError(t, err)
	require.NotEmpty(t, files)
	assert.Equal(t, "0001_create_users.up.sql", filepath.Base(files[0]))
	for _, f := range files {
		assert.NotContains(t, f, ".down.sql")
	}
}

func TestMigrationFiles_Ordered(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"0002_b.up.sql", "0001_a.up.sql", "0001_a.down.sql", "README.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("SELECT 1;"), 0o644))
	}

	files, err := MigrationFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "0001_a.up.sql"),
		filepath.Join(dir, "0002_b.up.sql"),
	}, files)
}

func TestMigrationFiles_Empty(t *testing.T) {
	_, err := MigrationFiles(t.TempDir())
	assert.ErrorContains(t, err, "no up migrations")
}
