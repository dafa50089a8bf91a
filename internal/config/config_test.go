package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3001, cfg.Port)
	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Equal(t, 10, cfg.DBMaxOpenConns)
	assert.True(t, cfg.AuthRequired)
	assert.Equal(t, []string{"admin"}, cfg.WriteRoles())
	assert.Empty(t, cfg.RedisURL)
	assert.Equal(t, 300, cfg.OpcionesCacheTTLSeconds)
}

func TestLoad_Env(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "8080")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_MAX_OPEN_CONNS", "25")
	t.Setenv("AUTH_REQUIRED", "false")
	t.Setenv("AUTH_WRITE_ROLES", " admin, supervisor ,,")
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 25, cfg.DBMaxOpenConns)
	assert.False(t, cfg.AuthRequired)
	assert.Equal(t, []string{"admin", "supervisor"}, cfg.WriteRoles())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Origins())
}
