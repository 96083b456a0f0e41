package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STUB_ADDRESS", "")
	t.Setenv("APP_ENV", "")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Server.Address)
	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("STUB_ADDRESS", ":9090")
	t.Setenv("APP_ENV", "dev")
	t.Setenv("SHUTDOWN_TIMEOUT", "2s")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, 2*time.Second, cfg.Server.ShutdownTimeout)
}
