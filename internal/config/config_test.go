package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apilog-admin/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
app:
  env: development
database:
  driver: sqlite
  path: ":memory:"
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "apilog-admin", cfg.App.Name)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, config.DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, 20, cfg.Pagination.DefaultLimit)
	assert.Equal(t, 0, cfg.Pagination.MaxLimit)
	assert.Equal(t, time.Minute, cfg.RateLimit.WindowDuration())
	assert.Equal(t, 5*time.Minute, cfg.Database.ConnMaxLifetimeDuration())
	assert.False(t, cfg.Redis.Enabled)
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, `
database:
  driver: postgres
  host: localhost
  dbname: logs
`)
	t.Setenv("APP_PORT", "9090")
	t.Setenv("PAGINATION_MAX_LIMIT", "200")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, 200, cfg.Pagination.MaxLimit)
	assert.True(t, cfg.IsProduction())
}

func TestLoadTrimsBasePath(t *testing.T) {
	path := writeConfig(t, `
app:
  base_path: /api/admin/
database:
  driver: SQLite
  path: data/logs.db
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/api/admin", cfg.App.BasePath)
	assert.Equal(t, config.DriverSQLite, cfg.Database.Driver)
}

func TestLoadValidation(t *testing.T) {
	cases := map[string]string{
		"unknown driver": `
database:
  driver: oracle
  host: db
  dbname: logs
`,
		"postgres without host": `
database:
  driver: postgres
  dbname: logs
`,
		"sqlite without path": `
database:
  driver: sqlite
`,
		"bad env": `
app:
  env: qa
database:
  driver: sqlite
  path: x.db
`,
		"redis without host": `
database:
  driver: sqlite
  path: x.db
redis:
  enabled: true
`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
