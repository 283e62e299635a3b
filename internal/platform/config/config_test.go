package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestLoad(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"), Default())
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("empty path yields defaults", func(t *testing.T) {
		cfg, err := Load("  ", Default())
		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.Server.Addr)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dashboard.toml")
		content := `
[server]
addr = ":9090"
request_timeout = "3s"

[database]
url = "postgres://dash@localhost/dash?sslmode=disable"

[dashboard]
timezone = "Asia/Shanghai"
dense_heatmap = true
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := Load(path, Default())
		require.NoError(t, err)
		assert.Equal(t, ":9090", cfg.Server.Addr)
		assert.Equal(t, 3*time.Second, cfg.Server.RequestTimeout.Std())
		assert.Equal(t, "postgres://dash@localhost/dash?sslmode=disable", cfg.Database.URL)
		assert.True(t, cfg.Dashboard.DenseHeatmap)
		assert.Equal(t, "info", cfg.Log.Level, "unset keys keep defaults")
		require.NoError(t, cfg.Validate())
	})

	t.Run("malformed toml fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.toml")
		require.NoError(t, os.WriteFile(path, []byte("[server\naddr ="), 0o600))

		_, err := Load(path, Default())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode toml")
	})

	t.Run("bad duration fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.toml")
		require.NoError(t, os.WriteFile(path, []byte("[server]\nrequest_timeout = \"soon\""), 0o600))

		_, err := Load(path, Default())
		require.Error(t, err)
	})
}

func TestApplyEnv(t *testing.T) {
	t.Run("overrides", func(t *testing.T) {
		cfg := Default()
		err := cfg.ApplyEnv(envMap(map[string]string{
			"DASHBOARD_ADDR":    ":7000",
			"DATABASE_URL":      "postgres://x",
			"JWT_SIGNING_KEY":   "k",
			"LOG_LEVEL":         "debug",
			"DASHBOARD_TZ":      "UTC",
			"HEATMAP_DENSE":     "true",
			"DASHBOARD_TIMEOUT": "250ms",
		}))
		require.NoError(t, err)
		assert.Equal(t, ":7000", cfg.Server.Addr)
		assert.Equal(t, "postgres://x", cfg.Database.URL)
		assert.Equal(t, "k", cfg.Auth.JWTSigningKey)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.True(t, cfg.Dashboard.DenseHeatmap)
		assert.Equal(t, 250*time.Millisecond, cfg.Server.RequestTimeout.Std())
	})

	t.Run("empty values are ignored", func(t *testing.T) {
		cfg := Default()
		require.NoError(t, cfg.ApplyEnv(envMap(map[string]string{"DASHBOARD_ADDR": ""})))
		assert.Equal(t, ":8080", cfg.Server.Addr)
	})

	t.Run("invalid bool", func(t *testing.T) {
		cfg := Default()
		err := cfg.ApplyEnv(envMap(map[string]string{"HEATMAP_DENSE": "sometimes"}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "HEATMAP_DENSE")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults are valid", func(*Config) {}, ""},
		{"blank addr", func(c *Config) { c.Server.Addr = " " }, "server.addr"},
		{"zero timeout", func(c *Config) { c.Server.RequestTimeout = 0 }, "request_timeout"},
		{"missing signing key", func(c *Config) { c.Auth.JWTSigningKey = "" }, "jwt_signing_key"},
		{"unknown log level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"unknown timezone", func(c *Config) { c.Dashboard.Timezone = "Mars/Olympus" }, "dashboard.timezone"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLocation(t *testing.T) {
	loc, err := DashboardConfig{}.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = DashboardConfig{Timezone: "UTC"}.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}
