package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("USERDIR_TEST_PORT=9090\nUSERDIR_TEST_KEEP=file\n"), 0o600))

	t.Setenv("ENV_PATH", "")
	t.Setenv("USERDIR_TEST_KEEP", "process")
	t.Cleanup(func() { _ = os.Unsetenv("USERDIR_TEST_PORT") })

	require.NoError(t, LoadDotEnv("local", path))
	assert.Equal(t, "9090", os.Getenv("USERDIR_TEST_PORT"))
	assert.Equal(t, "process", os.Getenv("USERDIR_TEST_KEEP"))
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	t.Setenv("ENV_PATH", "")
	missing := filepath.Join(t.TempDir(), "missing.env")

	assert.Error(t, LoadDotEnv("local", missing))
	assert.NoError(t, LoadDotEnv("prod", missing))
	assert.NoError(t, LoadDotEnv("local"))
}

func TestLoadDotEnv_EnvPathOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.env")
	require.NoError(t, os.WriteFile(path, []byte("USERDIR_TEST_CUSTOM=yes\n"), 0o600))

	t.Setenv("ENV_PATH", path)
	t.Cleanup(func() { _ = os.Unsetenv("USERDIR_TEST_CUSTOM") })

	require.NoError(t, LoadDotEnv("local", filepath.Join(dir, "ignored.env")))
	assert.Equal(t, "yes", os.Getenv("USERDIR_TEST_CUSTOM"))
}

func TestStringOrBoolOr(t *testing.T) {
	t.Setenv("USERDIR_TEST_STR", "")
	assert.Equal(t, "def", StringOr("USERDIR_TEST_STR", "def"))
	t.Setenv("USERDIR_TEST_STR", "set")
	assert.Equal(t, "set", StringOr("USERDIR_TEST_STR", "def"))

	t.Setenv("USERDIR_TEST_BOOL", "true")
	assert.True(t, BoolOr("USERDIR_TEST_BOOL", false))
	t.Setenv("USERDIR_TEST_BOOL", "nope")
	assert.True(t, BoolOr("USERDIR_TEST_BOOL", true))
}
