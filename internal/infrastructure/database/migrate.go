package database

import (
	"context"
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"apilog-admin/internal/config"
)

//go:embed migrations
var migrationsFS embed.FS

// migrationSet maps a driver to its goose dialect and migrations directory
type migrationSet struct {
	dialect string
	dir     string
}

var migrationSets = map[string]migrationSet{
	config.DriverPostgres: {dialect: "postgres", dir: "migrations/postgres"},
	config.DriverPgx:      {dialect: "postgres", dir: "migrations/postgres"},
	config.DriverMySQL:    {dialect: "mysql", dir: "migrations/mysql"},
	config.DriverSQLite:   {dialect: "sqlite3", dir: "migrations/sqlite"},
}

// goose keeps dialect, base FS and logger in package globals
var gooseMu sync.Mutex

// EnsureSchema applies the embedded migrations for the configured driver.
// It is meant for local runs; production tables belong to the log writer.
func (d *Database) EnsureSchema(ctx context.Context) error {
	set, ok := migrationSets[d.Driver]
	if !ok {
		return fmt.Errorf("no migrations for driver %q", d.Driver)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(gooseLogger{d.logger.Sugar().With("component", "goose")})
	if err := goose.SetDialect(set.dialect); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	if err := goose.UpContext(ctx, d.DB, set.dir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	d.logger.Info("Database schema ensured", zap.String("driver", d.Driver))
	return nil
}

// gooseLogger sends goose output through zap instead of the std logger
type gooseLogger struct {
	logger *zap.SugaredLogger
}

func (l gooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Infof(strings.TrimSuffix(format, "\n"), v...)
}

func (l gooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Fatalf(strings.TrimSuffix(format, "\n"), v...)
}
