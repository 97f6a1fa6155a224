package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"database": map[string]any{
			"driver":      "sqlite",
			"autoMigrate": true,
		},
		"auth": map[string]any{
			"accessTokenTTL": "30m",
			"bcryptCost":     10,
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "DATABASE_AUTOMIGRATE", want: "database.autoMigrate"},
		{envKey: "AUTH_ACCESSTOKENTTL", want: "auth.accessTokenTTL"},
		{envKey: "AUTH_BCRYPTCOST", want: "auth.bcryptCost"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, "HS256", cfg.Auth.Algorithm)
	assert.Equal(t, 30*time.Minute, cfg.Auth.AccessTokenTTL)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     func() *Config
		wantErr string
	}{
		{
			name: "sqlite with dsn",
			cfg: func() *Config {
				c := &Config{}
				c.Database.Driver = DriverSQLite
				c.Database.DSN = "file:todolist.db"

				return c
			},
		},
		{
			name: "mysql without dsn",
			cfg: func() *Config {
				c := &Config{}
				c.Database.Driver = DriverMySQL

				return c
			},
			wantErr: "database.dsn is required",
		},
		{
			name: "postgres without section",
			cfg: func() *Config {
				c := &Config{}
				c.Database.Driver = DriverPostgres

				return c
			},
			wantErr: "postgres section is required",
		},
		{
			name: "unknown driver",
			cfg: func() *Config {
				c := &Config{}
				c.Database.Driver = "oracle"

				return c
			},
			wantErr: "unknown database driver",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg().validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	yamlContent := []byte(`
env:
  env: local
http:
  port: 8000
secretKey:
  access: from-yaml
auth:
  accessTokenTTL: 30m
database:
  driver: sqlite
  dsn: "file:test.db"
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yamlContent, 0o600))

	t.Setenv("SECRETKEY_ACCESS", "from-env")
	t.Setenv("AUTH_ACCESSTOKENTTL", "45m")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.HTTP.Port)
	assert.Equal(t, "from-env", cfg.SecretKey.Access)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 45*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, "file:test.db", cfg.Database.DSN)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.yaml not found")
}
