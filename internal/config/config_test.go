package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingstat/tidylens/contingency"
	"github.com/lingstat/tidylens/internal/config"
	"github.com/lingstat/tidylens/tidiness"
)

// TestDefault verifies the canonical configuration.
func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.False(t, cfg.StrictCoverage)
	assert.False(t, cfg.DegenerateOne)
	assert.False(t, cfg.Looped)
	assert.Equal(t, 5, cfg.Precision)
}

// TestLoad_DefaultsOnly verifies Load with no file and no env equals Default.
func TestLoad_DefaultsOnly(t *testing.T) {
	t.Setenv("TIDYLENS_CONFIG", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

// TestLoad_EnvOverrides verifies TIDYLENS_-prefixed variables win over defaults.
func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TIDYLENS_CONFIG", "")
	t.Setenv("TIDYLENS_STRICT_COVERAGE", "true")
	t.Setenv("TIDYLENS_PRECISION", "3")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.True(t, cfg.StrictCoverage)
	assert.Equal(t, 3, cfg.Precision)
	assert.False(t, cfg.DegenerateOne, "untouched knobs keep their defaults")
}

// TestLoad_FileThenEnv verifies precedence: file beats defaults, env beats file.
func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tidylens.yaml")
	require.NoError(t, os.WriteFile(path, []byte("precision: 2\nlooped: true\n"), 0o600))

	t.Setenv("TIDYLENS_CONFIG", path)
	t.Setenv("TIDYLENS_PRECISION", "7")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Precision, "env wins over file")
	assert.True(t, cfg.Looped, "file wins over defaults")
}

// TestLoad_Failures walks the loader error taxonomy.
func TestLoad_Failures(t *testing.T) {
	t.Setenv("TIDYLENS_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := config.Load()
	assert.ErrorIs(t, err, config.ErrLoadFile)

	t.Setenv("TIDYLENS_CONFIG", "")
	t.Setenv("TIDYLENS_PRECISION", "99")
	_, err = config.Load()
	assert.ErrorIs(t, err, config.ErrBadPrecision)
}

// TestOptions_Mapping verifies the projection onto tidiness.Options.
func TestOptions_Mapping(t *testing.T) {
	cfg := config.Default()
	opts := cfg.Options()
	assert.Equal(t, tidiness.DefaultOptions(), opts)

	cfg.StrictCoverage = true
	cfg.DegenerateOne = true
	cfg.Looped = true
	opts = cfg.Options()
	assert.Equal(t, contingency.RequireFullCoverage, opts.Coverage)
	assert.Equal(t, tidiness.DegenerateOne, opts.Degenerate)
	assert.Equal(t, tidiness.Looped, opts.Mode)
}
