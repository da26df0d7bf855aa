package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"warn"`
	NoColor  bool   `yaml:"no-color" env:"TICTACTOE_NO_COLOR" env-default:"false"`
	Redis    Redis  `yaml:"redis"`
}

// Redis mirrors the running session's scoreboard for external viewers. Disabled by default.
type Redis struct {
	Enabled bool          `yaml:"enabled" env:"TICTACTOE_REDIS_ENABLED" env-default:"false"`
	Host    string        `yaml:"host" env:"TICTACTOE_REDIS_HOST" env-default:"localhost"`
	Port    string        `yaml:"port" env:"TICTACTOE_REDIS_PORT" env-default:"6379"`
	TTL     time.Duration `yaml:"ttl" env:"TICTACTOE_REDIS_TTL" env-default:"1h"`
}

// MustLoad - load all configurations in config.yml file. Without the file only environment variables and defaults are used.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
