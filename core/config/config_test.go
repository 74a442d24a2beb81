package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assetkit/assetkit/core/config"
)

type serverConfig struct {
	Addr string `env:"TEST_CFG_ADDR" envDefault:":8080"`
	Root string `env:"TEST_CFG_ROOT"`
}

type requiredConfig struct {
	Token string `env:"TEST_CFG_TOKEN,required"`
}

func TestLoad(t *testing.T) {
	t.Setenv("TEST_CFG_ROOT", "/srv/assets")

	var cfg serverConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, ":8080", cfg.Addr, "default applies when variable is unset")
	assert.Equal(t, "/srv/assets", cfg.Root)
}

func TestLoadCachesPerType(t *testing.T) {
	t.Setenv("TEST_CFG_ROOT", "/srv/assets")

	var first serverConfig
	require.NoError(t, config.Load(&first))

	// Changing the environment after the first load must not change the
	// cached value for the same type.
	t.Setenv("TEST_CFG_ROOT", "/elsewhere")

	var second serverConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, first, second)
}

func TestLoadRequiredMissing(t *testing.T) {
	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TEST_CFG_TOKEN")
}

func TestMustLoadPanics(t *testing.T) {
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}
