package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadDotEnv_LoadsValuesAndIgnoresNoise(t *testing.T) {
	unsetEnv(t, "A", "B", "C")

	path := writeFile(t, t.TempDir(), ".env", `
# comment

A=one
export B=two
C="three"
`)

	require.NoError(t, loadDotEnv(path))

	assert.Equal(t, "one", os.Getenv("A"))
	assert.Equal(t, "two", os.Getenv("B"))
	assert.Equal(t, "three", os.Getenv("C"))
}

func TestLoadDotEnv_DoesNotOverwriteExistingEnv(t *testing.T) {
	t.Setenv("KEEP", "already")

	path := writeFile(t, t.TempDir(), ".env", "KEEP=fromfile\n")

	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "already", os.Getenv("KEEP"))
}

func TestLoadDotEnv_MissingFileIsFine(t *testing.T) {
	assert.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), "absent.env")))
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	unsetEnv(t, "APP_ENV", "DB_PATH", "LOG_LEVEL", "LOG_FORMAT", "CONFIG_FILE")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "./coolseason.db", cfg.DBPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.True(t, cfg.IsDev())
}

func TestLoad_EnvOverridesDotEnvAndConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	unsetEnv(t, "APP_ENV", "DB_PATH", "LOG_LEVEL", "LOG_FORMAT", "FINANCE_TERM_MONTHS")

	configFile := writeFile(t, dir, "coolseason.yaml", "db_path: from-file.db\nlog_format: json\nfinance_term_months: 48\n")
	writeFile(t, dir, ".env", "LOG_FORMAT=console\nAPP_ENV=prod\n")
	t.Setenv("CONFIG_FILE", configFile)
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "from-file.db", cfg.DBPath)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.IsDev())
	assert.Equal(t, 48, cfg.Values.GetInt("finance_term_months"))
}

func TestLoad_MissingConfigFileFails(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load()
	assert.Error(t, err)
}
