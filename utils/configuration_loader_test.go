package utils_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/brickster241/repoversion/utils"
)

type testConfiguration struct {
	LogLevel string        `mapstructure:"log_level"`
	MaxAge   time.Duration `mapstructure:"max_age"`
	NoCache  bool          `mapstructure:"no_cache"`
}

var testDefaults = map[string]any{
	"log_level": "error",
	"max_age":   time.Minute,
	"no_cache":  false,
}

func TestConfigurationLoaderDefaults(t *testing.T) {
	loader := utils.NewConfigurationLoader("repoversion", "yaml", "RVTEST", []string{t.TempDir()})

	var cfg testConfiguration
	used, err := loader.Load("", testDefaults, &cfg)
	require.NoError(t, err)
	require.Empty(t, used)
	require.Equal(t, testConfiguration{LogLevel: "error", MaxAge: time.Minute}, cfg)
}

func TestConfigurationLoaderFileAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "repoversion.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\nmax_age: 5m\n"), 0o644))

	loader := utils.NewConfigurationLoader("repoversion", "yaml", "RVTEST", []string{dir})

	var cfg testConfiguration
	used, err := loader.Load("", testDefaults, &cfg)
	require.NoError(t, err)
	require.Equal(t, path, used)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, 5*time.Minute, cfg.MaxAge)

	// Environment wins over the file
	t.Setenv("RVTEST_MAX_AGE", "10s")
	t.Setenv("RVTEST_NO_CACHE", "true")
	cfg = testConfiguration{}
	_, err = loader.Load(path, testDefaults, &cfg)
	require.NoError(t, err)
	require.Equal(t, 10*time.Second, cfg.MaxAge)
	require.True(t, cfg.NoCache)
}

func TestConfigurationLoaderMissingExplicitFile(t *testing.T) {
	loader := utils.NewConfigurationLoader("repoversion", "yaml", "RVTEST", nil)

	var cfg testConfiguration
	_, err := loader.Load(filepath.Join(t.TempDir(), "missing.yaml"), testDefaults, &cfg)
	require.Error(t, err)
}
