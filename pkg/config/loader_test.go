package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuskit/campuskit/pkg/config"
)

type testConfig struct {
	Name    string        `env:"CFGTEST_NAME,required"`
	Port    int           `env:"CFGTEST_PORT" envDefault:"8080"`
	Timeout time.Duration `env:"CFGTEST_TIMEOUT" envDefault:"30s"`
}

func TestLoad(t *testing.T) {
	t.Run("fills struct from environment with defaults", func(t *testing.T) {
		t.Setenv("CFGTEST_NAME", "campuskit")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "campuskit", cfg.Name)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, 30*time.Second, cfg.Timeout)
	})

	t.Run("explicit values override defaults", func(t *testing.T) {
		t.Setenv("CFGTEST_NAME", "campuskit")
		t.Setenv("CFGTEST_PORT", "9090")
		t.Setenv("CFGTEST_TIMEOUT", "5s")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, 9090, cfg.Port)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
	})

	t.Run("missing required variable fails", func(t *testing.T) {
		var cfg testConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer fails", func(t *testing.T) {
		var cfg *testConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})

	t.Run("must load panics on failure", func(t *testing.T) {
		assert.Panics(t, func() {
			var cfg testConfig
			config.MustLoad(&cfg)
		})
	})
}
