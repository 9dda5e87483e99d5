package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/atelier/pkg/config"
)

type defaultsConfig struct {
	Name    string `env:"ATELIER_TEST_DEFAULT_NAME" envDefault:"atelier"`
	Port    int    `env:"ATELIER_TEST_DEFAULT_PORT" envDefault:"8080"`
	Verbose bool   `env:"ATELIER_TEST_DEFAULT_VERBOSE" envDefault:"true"`
}

type overrideConfig struct {
	Name string `env:"ATELIER_TEST_OVERRIDE_NAME" envDefault:"atelier"`
}

type cachedConfig struct {
	Value string `env:"ATELIER_TEST_CACHED_VALUE"`
}

type requiredConfig struct {
	Secret string `env:"ATELIER_TEST_REQUIRED_SECRET,required"`
}

type retryConfig struct {
	Secret string `env:"ATELIER_TEST_RETRY_SECRET,required"`
}

type fileConfig struct {
	Name   string `env:"ATELIER_TEST_FILE_NAME"`
	Port   int    `env:"ATELIER_TEST_FILE_PORT"`
	Preset string `env:"ATELIER_TEST_FILE_PRESET"`
}

// Tests in this file touch the process environment and the shared cache, so
// they do not run in parallel.

func TestLoad_Defaults(t *testing.T) {
	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "atelier", cfg.Name)
	assert.Equal(t, 8080, cfg.Port)
	assert.True(t, cfg.Verbose)
}

func TestLoad_EnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("ATELIER_TEST_OVERRIDE_NAME", "storefront")

	var cfg overrideConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "storefront", cfg.Name)
}

func TestLoad_CachesPerType(t *testing.T) {
	t.Setenv("ATELIER_TEST_CACHED_VALUE", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("ATELIER_TEST_CACHED_VALUE", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value)

	config.ResetCache()

	var third cachedConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second", third.Value)
}

func TestLoad_MissingRequired(t *testing.T) {
	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_FailureIsNotCached(t *testing.T) {
	var cfg retryConfig
	require.Error(t, config.Load(&cfg))

	t.Setenv("ATELIER_TEST_RETRY_SECRET", "s3cret")
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "s3cret", cfg.Secret)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *defaultsConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestMustLoad(t *testing.T) {
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
	assert.NotPanics(t, func() {
		var cfg defaultsConfig
		config.MustLoad(&cfg)
	})
}

func TestLoadEnv(t *testing.T) {
	// Set before loading so the file must not override it.
	t.Setenv("ATELIER_TEST_FILE_PRESET", "process")
	// Registered for cleanup, then unset so the file can fill them.
	for _, key := range []string{"ATELIER_TEST_FILE_NAME", "ATELIER_TEST_FILE_PORT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	t.Run("missing file", func(t *testing.T) {
		assert.ErrorIs(t, config.LoadEnv("testdata/missing.env"), config.ErrLoadingEnv)
	})

	t.Run("file fills unset variables", func(t *testing.T) {
		require.NoError(t, config.LoadEnv("testdata/app.env"))
		config.ResetCache()

		var cfg fileConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "from-file", cfg.Name)
		assert.Equal(t, 9090, cfg.Port)
		assert.Equal(t, "process", cfg.Preset)
	})
}
