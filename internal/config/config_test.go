package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/fieldops/internal/nav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvStartScreen, EnvDarkMode, EnvLogFile, EnvLogActions, EnvSeedFile} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, nav.Login, cfg.StartScreen)
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvStartScreen, "equipmentlist")
	t.Setenv(EnvDarkMode, "true")
	t.Setenv(EnvLogActions, "1")
	t.Setenv(EnvLogFile, "/tmp/fieldops.log")
	t.Setenv(EnvSeedFile, "seed.yaml")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, nav.EquipmentList, cfg.StartScreen)
	assert.True(t, cfg.DarkMode)
	assert.True(t, cfg.LogActions)
	assert.Equal(t, "/tmp/fieldops.log", cfg.LogFile)
	assert.Equal(t, "seed.yaml", cfg.SeedFile)
}

func TestLoad_EnvFileWithEnvironmentPrecedence(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	content := "FIELDOPS_START_SCREEN=Profile\nFIELDOPS_DARK_MODE=true\nFIELDOPS_LOG_FILE=from-file.log\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv(EnvLogFile, "from-env.log")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, nav.Profile, cfg.StartScreen)
	assert.True(t, cfg.DarkMode)
	assert.Equal(t, "from-env.log", cfg.LogFile)
}

func TestLoad_InvalidValuesKeepDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvStartScreen, "Dashboard")
	t.Setenv(EnvDarkMode, "sometimes")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, nav.Login, cfg.StartScreen)
	assert.False(t, cfg.DarkMode)
}
