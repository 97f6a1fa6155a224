package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnvAliases(t *testing.T) {
	t.Helper()
	for _, alias := range envAliases {
		t.Setenv(alias.name, "")
		t.Setenv(alias.canonical, "")
	}
}

func TestApplyEnvAliases(t *testing.T) {
	clearEnvAliases(t)
	t.Setenv("SECRET_KEY", "from-dotenv")
	t.Setenv("ALGORITHM", "HS512")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "45")
	t.Setenv("DATABASE_URL", "sqlite:///./todo.db")

	cfg := &Config{}
	cfg.SecretKey.Access = DevelopmentSecret
	require.NoError(t, applyEnvAliases(cfg))

	assert.Equal(t, "from-dotenv", cfg.SecretKey.Access)
	assert.Equal(t, "HS512", cfg.Auth.Algorithm)
	assert.Equal(t, 45*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "file:./todo.db?_pragma=foreign_keys(1)", cfg.Database.DSN)
}

func TestApplyEnvAliases_CanonicalWins(t *testing.T) {
	clearEnvAliases(t)
	t.Setenv("SECRET_KEY", "from-dotenv")
	t.Setenv("SECRETKEY_ACCESS", "canonical")

	cfg := &Config{}
	cfg.SecretKey.Access = "canonical"
	require.NoError(t, applyEnvAliases(cfg))

	assert.Equal(t, "canonical", cfg.SecretKey.Access)
}

func TestApplyEnvAliases_MySQLURL(t *testing.T) {
	clearEnvAliases(t)
	t.Setenv("DATABASE_URL", "mysql+pymysql://root:pw@localhost:3306/todo")

	cfg := &Config{}
	require.NoError(t, applyEnvAliases(cfg))

	assert.Equal(t, DriverMySQL, cfg.Database.Driver)
	assert.Equal(t, "root:pw@tcp(localhost:3306)/todo?parseTime=true", cfg.Database.DSN)
}

func TestApplyEnvAliases_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "non-numeric expiry", key: "ACCESS_TOKEN_EXPIRE_MINUTES", value: "soon"},
		{name: "zero expiry", key: "ACCESS_TOKEN_EXPIRE_MINUTES", value: "0"},
		{name: "postgres url", key: "DATABASE_URL", value: "postgresql://u:p@db/todo"},
		{name: "sqlite without path", key: "DATABASE_URL", value: "sqlite:///"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvAliases(t)
			t.Setenv(tt.key, tt.value)

			assert.Error(t, applyEnvAliases(&Config{}))
		})
	}
}
