package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config is the full service configuration. Values come from an optional TOML
// file and are then overridden by environment variables.
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Auth      AuthConfig      `toml:"auth"`
	Log       LogConfig       `toml:"log"`
	Dashboard DashboardConfig `toml:"dashboard"`
}

// ServerConfig captures HTTP server level configuration.
type ServerConfig struct {
	Addr string `toml:"addr"`
	// RequestTimeout bounds every dashboard request.
	RequestTimeout Duration `toml:"request_timeout"`
}

// DatabaseConfig selects the approval store. An empty URL runs the service
// against a seeded in-memory store.
type DatabaseConfig struct {
	URL     string `toml:"url"`
	Migrate bool   `toml:"migrate"`
}

type AuthConfig struct {
	JWTSigningKey string `toml:"jwt_signing_key"`
	JWTIssuer     string `toml:"jwt_issuer"`
}

type LogConfig struct {
	Level string `toml:"level"` // debug | info | warn | error
}

// DashboardConfig tunes the analytics engine.
type DashboardConfig struct {
	// Timezone names the IANA zone used for calendar days and months.
	Timezone     string `toml:"timezone"`
	DenseHeatmap bool   `toml:"dense_heatmap"`
}

// Duration is a time.Duration that reads from TOML strings such as "10s".
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", text, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Default returns the development defaults.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:           ":8080",
			RequestTimeout: Duration(10 * time.Second),
		},
		Auth: AuthConfig{
			// Use a default for development - should be overridden in production
			JWTSigningKey: "dev-secret-key-change-in-production",
			JWTIssuer:     "approvaldash",
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads path over defaults. A missing or empty file yields defaults.
func Load(path string, defaults Config) (Config, error) {
	cfg := defaults
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if len(content) == 0 {
		return cfg, nil
	}

	if err := toml.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode toml: %w", err)
	}
	return cfg, nil
}

// FromEnv loads the file named by DASHBOARD_CONFIG, applies environment
// overrides and validates the result so main stays lean.
func FromEnv() (Config, error) {
	cfg, err := Load(os.Getenv("DASHBOARD_CONFIG"), Default())
	if err != nil {
		return Config{}, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from environment variables read through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	str("DASHBOARD_ADDR", &c.Server.Addr)
	str("DATABASE_URL", &c.Database.URL)
	str("JWT_SIGNING_KEY", &c.Auth.JWTSigningKey)
	str("JWT_ISSUER", &c.Auth.JWTIssuer)
	str("LOG_LEVEL", &c.Log.Level)
	str("DASHBOARD_TZ", &c.Dashboard.Timezone)

	if v, ok := lookup("DASHBOARD_TIMEOUT"); ok && v != "" {
		if err := c.Server.RequestTimeout.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("DASHBOARD_TIMEOUT: %w", err)
		}
	}
	for key, dst := range map[string]*bool{
		"HEATMAP_DENSE":    &c.Dashboard.DenseHeatmap,
		"DATABASE_MIGRATE": &c.Database.Migrate,
	} {
		if v, ok := lookup(key); ok && v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			*dst = b
		}
	}
	return nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Server.Addr) == "" {
		return errors.New("server.addr is required")
	}
	if c.Server.RequestTimeout.Std() <= 0 {
		return fmt.Errorf("server.request_timeout must be positive, got %s", c.Server.RequestTimeout.Std())
	}
	if strings.TrimSpace(c.Auth.JWTSigningKey) == "" {
		return errors.New("auth.jwt_signing_key is required")
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	if _, err := c.Dashboard.Location(); err != nil {
		return err
	}
	return nil
}

// SlogLevel maps the configured level name onto slog.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	name := strings.TrimSpace(l.Level)
	if name == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("invalid log.level: %q", l.Level)
	}
	return level, nil
}

// Location resolves the dashboard timezone. Empty means the process local zone.
func (d DashboardConfig) Location() (*time.Location, error) {
	if strings.TrimSpace(d.Timezone) == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(d.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid dashboard.timezone %q: %w", d.Timezone, err)
	}
	return loc, nil
}
