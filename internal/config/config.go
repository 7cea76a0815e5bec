package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const DefaultHTTPPort = 8080

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPHost string `yaml:"http-host" env:"HOST" env-default:"0.0.0.0"`
	HTTPPort string `yaml:"http-port" env:"PORT" env-default:"8080"`
	Redis    Redis  `yaml:"redis"`
}

type Redis struct {
	Enabled bool          `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	TTL     time.Duration `yaml:"ttl" env:"REDIS_TTL" env-default:"24h"`
}

// MustLoad - loads config.yml when present, otherwise the environment only.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}

		return config, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}

	return config, nil
}

// HTTPAddr - host:port to listen on; a missing or malformed port falls back to 8080.
func (that *Config) HTTPAddr() string {
	port, err := strconv.Atoi(that.HTTPPort)
	if err != nil || port < 1 || port > 65535 {
		port = DefaultHTTPPort
	}

	return net.JoinHostPort(that.HTTPHost, strconv.Itoa(port))
}

func (that *Redis) GetRedisAddr() string {
	return net.JoinHostPort(that.Host, that.Port)
}
