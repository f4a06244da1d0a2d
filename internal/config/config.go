package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full service configuration. Values load in order of
// precedence: defaults, then the YAML file (if present), then SHIFTCOACH_*
// environment variables.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
}

type ServerConfig struct {
	Port            int     `yaml:"port"`
	Timezone        string  `yaml:"timezone"`
	CacheTTLSeconds int     `yaml:"cache_ttl_seconds"`
	LoginRatePerSec float64 `yaml:"login_rate_per_sec"`
	LoginRateBurst  int     `yaml:"login_rate_burst"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type AuthConfig struct {
	SecretKey    string `yaml:"secret_key"`
	CookieSecure bool   `yaml:"cookie_secure"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:            8080,
			Timezone:        "UTC",
			CacheTTLSeconds: 60,
			LoginRatePerSec: 1,
			LoginRateBurst:  5,
		},
		Database: DatabaseConfig{
			Path: filepath.Join("data", "shiftcoach.db"),
		},
		Auth: AuthConfig{
			SecretKey: "change_me_in_production",
		},
	}
}

// Load reads the config file at path (missing file is fine) and applies
// environment overrides on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err == nil {
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	applyEnvOverrides(&cfg)

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return Config{}, fmt.Errorf("invalid server port %d", cfg.Server.Port)
	}
	return cfg, nil
}

func (cfg Config) CacheTTL() time.Duration {
	if cfg.Server.CacheTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(cfg.Server.CacheTTLSeconds) * time.Second
}

func applyEnvOverrides(cfg *Config) {
	if value := os.Getenv("SHIFTCOACH_PORT"); value != "" {
		if port, err := strconv.Atoi(value); err == nil {
			cfg.Server.Port = port
		}
	}
	if value := os.Getenv("SHIFTCOACH_TZ"); value != "" {
		cfg.Server.Timezone = value
	}
	if value := os.Getenv("SHIFTCOACH_DB_PATH"); value != "" {
		cfg.Database.Path = value
	}
	if value := os.Getenv("SHIFTCOACH_SECRET_KEY"); value != "" {
		cfg.Auth.SecretKey = value
	}
	if value := os.Getenv("SHIFTCOACH_COOKIE_SECURE"); value != "" {
		cfg.Auth.CookieSecure = value == "1" || value == "true"
	}
}
