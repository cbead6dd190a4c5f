package conf

import (
	"testing"

	"github.com/caarlos0/env/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 5000, cfg.Scheme.HTTPPort)
	assert.Equal(t, "sqlite3", cfg.Database.Type)
	assert.Equal(t, "data/taskdesk.db", cfg.Database.DBFile)
	assert.False(t, cfg.Debug)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_TYPE", "postgres")
	t.Setenv("DB_DSN", "host=db user=app dbname=tasks")
	t.Setenv("DEBUG", "true")

	cfg := DefaultConfig()
	require.NoError(t, env.Parse(cfg))
	assert.Equal(t, 8080, cfg.Scheme.HTTPPort)
	assert.Equal(t, "postgres", cfg.Database.Type)
	assert.Equal(t, "host=db user=app dbname=tasks", cfg.Database.DSN)
	assert.True(t, cfg.Debug)
}
