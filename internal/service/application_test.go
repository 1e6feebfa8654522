package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"

	"apilog-admin/internal/config"
)

func waitDone(t *testing.T, a *Application) {
	t.Helper()
	select {
	case <-a.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("application did not stop")
	}
}

func TestShutdownBeforeRun(t *testing.T) {
	a := newApplication(fx.NopLogger)
	a.Shutdown()

	assert.NoError(t, a.Run())
	waitDone(t, a)
}

func TestShutdownWhileRunning(t *testing.T) {
	a := newApplication(fx.Options(
		fx.NopLogger,
		fx.Invoke(func(lc fx.Lifecycle) {
			lc.Append(fx.StartHook(func() {}))
		}),
	))

	runErr := make(chan error, 1)
	go func() { runErr <- a.Run() }()

	// Shutdown from another goroutine, as the service control handler does
	a.Shutdown()
	a.Shutdown()

	waitDone(t, a)
	require.NoError(t, <-runErr)
}

func TestRunReturnsStartError(t *testing.T) {
	a := newApplication(fx.Options(
		fx.NopLogger,
		fx.Invoke(func(lc fx.Lifecycle) {
			lc.Append(fx.Hook{OnStart: func(context.Context) error {
				return errors.New("address already in use")
			}})
		}),
	))

	err := a.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "address already in use")
	waitDone(t, a)
}

func TestIdentityFor(t *testing.T) {
	def := IdentityFor(nil)
	assert.Equal(t, "apilog-admin", def.Name)
	assert.Contains(t, def.DisplayName, "apilog-admin")

	cfg := &config.Config{
		App:      config.AppConfig{Name: "billing logs/eu"},
		Database: config.DatabaseConfig{Driver: config.DriverMySQL},
	}
	id := IdentityFor(cfg)
	assert.Equal(t, "billing-logs-eu", id.Name)
	assert.Equal(t, "API Log Admin (billing-logs-eu)", id.DisplayName)
	assert.Contains(t, id.Description, "mysql")
}
