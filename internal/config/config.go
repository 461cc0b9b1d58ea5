package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/meltforce/fitprogram/internal/energy"
	"github.com/meltforce/fitprogram/internal/program"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Profile   ProfileConfig   `yaml:"profile"`
	Tailscale TailscaleConfig `yaml:"tailscale"`
	Local     LocalConfig     `yaml:"local"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

type AuthConfig struct {
	APIKey string `yaml:"api_key"`
}

// ProfileConfig shapes the generated program.
type ProfileConfig struct {
	WeightKg float64 `yaml:"weight_kg"`
	Weeks    int     `yaml:"weeks"`
}

type TailscaleConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Hostname string `yaml:"hostname"`
	StateDir string `yaml:"state_dir"`
}

// LocalConfig is used by the CLI, which keeps completions in SQLite.
type LocalConfig struct {
	StateDir string `yaml:"state_dir"`
}

// DSN returns a PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	sslmode := d.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, sslmode)
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A .env file in the working directory, if present, is loaded into the
// environment first; variables already set are not replaced.
// Env vars use the prefix FITPROGRAM_ and underscore-separated paths:
//
//	FITPROGRAM_SERVER_HOST, FITPROGRAM_SERVER_PORT,
//	FITPROGRAM_DB_HOST, FITPROGRAM_DB_PORT, FITPROGRAM_DB_NAME,
//	FITPROGRAM_DB_USER, FITPROGRAM_DB_PASSWORD, FITPROGRAM_DB_SSLMODE,
//	FITPROGRAM_AUTH_API_KEY, FITPROGRAM_PROFILE_WEIGHT_KG, FITPROGRAM_PROFILE_WEEKS,
//	FITPROGRAM_TAILSCALE_ENABLED, FITPROGRAM_TAILSCALE_HOSTNAME,
//	FITPROGRAM_TAILSCALE_STATE_DIR, FITPROGRAM_LOCAL_STATE_DIR
func Load(path string) (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Default returns the values used when the file leaves a field out.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Host: "127.0.0.1", Port: 8080},
		Profile: ProfileConfig{
			WeightKg: energy.DefaultWeightKg,
			Weeks:    program.DefaultWeeks,
		},
		Tailscale: TailscaleConfig{Hostname: "fitprogram"},
	}
}

func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("loading %s: %w", path, err)
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FITPROGRAM_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("FITPROGRAM_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("FITPROGRAM_DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("FITPROGRAM_DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Database.Port = port
		}
	}
	if v := os.Getenv("FITPROGRAM_DB_NAME"); v != "" {
		cfg.Database.Name = v
	}
	if v := os.Getenv("FITPROGRAM_DB_USER"); v != "" {
		cfg.Database.User = v
	}
	if v := os.Getenv("FITPROGRAM_DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("FITPROGRAM_DB_SSLMODE"); v != "" {
		cfg.Database.SSLMode = v
	}
	if v := os.Getenv("FITPROGRAM_AUTH_API_KEY"); v != "" {
		cfg.Auth.APIKey = v
	}
	if v := os.Getenv("FITPROGRAM_PROFILE_WEIGHT_KG"); v != "" {
		if kg, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Profile.WeightKg = kg
		}
	}
	if v := os.Getenv("FITPROGRAM_PROFILE_WEEKS"); v != "" {
		if weeks, err := strconv.Atoi(v); err == nil {
			cfg.Profile.Weeks = weeks
		}
	}
	if v := os.Getenv("FITPROGRAM_TAILSCALE_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Tailscale.Enabled = enabled
		}
	}
	if v := os.Getenv("FITPROGRAM_TAILSCALE_HOSTNAME"); v != "" {
		cfg.Tailscale.Hostname = v
	}
	if v := os.Getenv("FITPROGRAM_TAILSCALE_STATE_DIR"); v != "" {
		cfg.Tailscale.StateDir = v
	}
	if v := os.Getenv("FITPROGRAM_LOCAL_STATE_DIR"); v != "" {
		cfg.Local.StateDir = v
	}
}

func (c *Config) validate() error {
	if c.Server.Port == 0 {
		return fmt.Errorf("server.port is required")
	}
	if c.Database.Host == "" {
		return fmt.Errorf("database.host is required")
	}
	if c.Database.Port == 0 {
		return fmt.Errorf("database.port is required")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("database.name is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database.user is required")
	}
	if c.Auth.APIKey == "" {
		return fmt.Errorf("auth.api_key is required")
	}
	if c.Profile.WeightKg <= 0 {
		return fmt.Errorf("profile.weight_kg must be positive")
	}
	if c.Profile.Weeks < 1 {
		return fmt.Errorf("profile.weeks must be at least 1")
	}
	if c.Tailscale.Enabled && c.Tailscale.Hostname == "" {
		return fmt.Errorf("tailscale.hostname is required when tailscale is enabled")
	}
	return nil
}
