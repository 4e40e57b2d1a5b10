package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearSettingsEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"YMIR_API_URL", "YMIR_API_TOKEN", "YMIR_TEAM", "YMIR_CONFIG_DIR"} {
		t.Setenv(key, "")
	}
}

func TestLoadSettingsFrom_MissingFile(t *testing.T) {
	clearSettingsEnv(t)

	s, err := LoadSettingsFrom(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIURL, s.APIURL)
	assert.Empty(t, s.Token())
	assert.Zero(t, s.ActiveTeam())
	assert.NotNil(t, s.Timeouts)
}

func TestSettings_SaveAndReload(t *testing.T) {
	clearSettingsEnv(t)
	dir := filepath.Join(t.TempDir(), "nested")

	s, err := LoadSettingsFrom(dir)
	require.NoError(t, err)
	s.SetToken("secret")
	s.SetActiveTeam(7)
	require.NoError(t, s.Save())

	info, err := os.Stat(filepath.Join(dir, "config.yml"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	reloaded, err := LoadSettingsFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, "secret", reloaded.Token())
	assert.Equal(t, 7, reloaded.ActiveTeam())
}

func TestSettings_EnvironmentOverrides(t *testing.T) {
	clearSettingsEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte("token: stored\nactive_team: 1\n"), 0o600))

	t.Setenv("YMIR_API_TOKEN", "from-env")
	t.Setenv("YMIR_TEAM", "9")
	t.Setenv("YMIR_API_URL", "http://localhost:8080/api")

	s, err := LoadSettingsFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, "from-env", s.Token())
	assert.Equal(t, 9, s.ActiveTeam())
	assert.Equal(t, "http://localhost:8080/api", s.APIURL)
}

func TestLoadSettingsFrom_InvalidYAML(t *testing.T) {
	clearSettingsEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte("token: [unclosed"), 0o600))

	_, err := LoadSettingsFrom(dir)
	assert.ErrorContains(t, err, "failed to unmarshal settings")
}

func TestDefaultDir(t *testing.T) {
	t.Setenv("YMIR_CONFIG_DIR", "/tmp/ymir-test")
	dir, err := DefaultDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/ymir-test", dir)
}
