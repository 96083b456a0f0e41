package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	clientconfig "tau/internal/app/client/config"
)

const (
	envPath = "../../.env"

	defaultAddress         = "localhost:8080"
	defaultShutdownTimeout = 5 * time.Second
)

type Config struct {
	Env    string
	Server server
	Logger logger
}

type server struct {
	Address         string
	ShutdownTimeout time.Duration
}

type logger struct {
	LogLevel string
}

// Load reads the stub server settings from the environment.
func Load(v *viper.Viper) (*Config, error) {
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("load %s: %w", envPath, err)
		}
	}

	v.AutomaticEnv()
	v.SetDefault("APP_ENV", clientconfig.EnvLocal)
	v.SetDefault("STUB_ADDRESS", defaultAddress)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SHUTDOWN_TIMEOUT", defaultShutdownTimeout)

	cfg := &Config{
		Env: v.GetString("APP_ENV"),
		Server: server{
			Address:         v.GetString("STUB_ADDRESS"),
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		},
		Logger: logger{LogLevel: v.GetString("LOG_LEVEL")},
	}

	if cfg.Server.Address == "" {
		return nil, fmt.Errorf("STUB_ADDRESS must not be empty")
	}

	return cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load(viper.New())
	if err != nil {
		panic(err)
	}
	return cfg
}
