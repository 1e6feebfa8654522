package service

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"go.uber.org/fx"

	"apilog-admin/internal/config"
	deliveryhttp "apilog-admin/internal/delivery/http"
	"apilog-admin/internal/infrastructure/database"
	"apilog-admin/internal/infrastructure/logger"
	"apilog-admin/internal/infrastructure/redis"
	"apilog-admin/internal/infrastructure/repository"
	"apilog-admin/internal/server"
	"apilog-admin/internal/usecase"
)

const defaultAppName = "apilog-admin"

// Identity is how the service manager knows this instance. Several
// instances pointed at different log stores need different app names.
type Identity struct {
	Name        string
	DisplayName string
	Description string
}

// IdentityFor derives the service identity from app.name
func IdentityFor(cfg *config.Config) Identity {
	name := defaultAppName
	if cfg != nil && strings.TrimSpace(cfg.App.Name) != "" {
		name = strings.TrimSpace(cfg.App.Name)
	}
	// the service control manager rejects '/' and '\' in names
	name = strings.NewReplacer("/", "-", "\\", "-", " ", "-").Replace(name)

	id := Identity{
		Name:        name,
		DisplayName: "API Log Admin (" + name + ")",
		Description: "Read-only admin API over the recorded API call logs",
	}
	if cfg != nil {
		id.Description = fmt.Sprintf("%s, %s store", id.Description, cfg.Database.Driver)
	}
	return id
}

// Options is the full module graph shared by the console and service entrypoints
func Options() fx.Option {
	return fx.Options(
		fx.WithLogger(logger.FxLogger),

		// Configuration
		config.Module,

		// Infrastructure
		logger.Module,
		database.Module,
		redis.Module,
		repository.Module,

		// Business Logic
		usecase.Module,

		// Delivery
		deliveryhttp.Module,

		// Server
		server.Module,
	)
}

// Application wraps the fx.App for service management
type Application struct {
	opts     fx.Option
	mu       sync.Mutex
	app      *fx.App
	ctx      context.Context
	cancel   context.CancelFunc
	doneChan chan struct{}
}

// NewApplication creates an Application over the full module graph
func NewApplication() *Application {
	return newApplication(Options())
}

func newApplication(opts fx.Option) *Application {
	ctx, cancel := context.WithCancel(context.Background())
	return &Application{
		opts:     opts,
		ctx:      ctx,
		cancel:   cancel,
		doneChan: make(chan struct{}),
	}
}

// Run starts the application and blocks until a signal, Shutdown, or an fx
// shutdown request. It returns the start error, if any.
func (a *Application) Run() error {
	defer close(a.doneChan)

	app := fx.New(
		// Provide context
		fx.Provide(func() context.Context { return a.ctx }),
		a.opts,
	)

	a.mu.Lock()
	if err := a.ctx.Err(); err != nil {
		// Shutdown won the race; nothing was started
		a.mu.Unlock()
		return nil
	}
	a.app = app
	a.mu.Unlock()

	if err := app.Start(a.ctx); err != nil {
		if a.ctx.Err() != nil {
			// stopped by Shutdown while starting
			a.Shutdown()
			return nil
		}
		return fmt.Errorf("failed to start: %w", err)
	}

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case <-sigChan:
	case <-app.Done():
	case <-a.ctx.Done():
	}
	a.Shutdown()
	return nil
}

// Shutdown stops the application. It is safe to call from any goroutine and
// more than once.
func (a *Application) Shutdown() {
	a.mu.Lock()
	a.cancel()
	app := a.app
	a.app = nil
	a.mu.Unlock()

	if app != nil {
		ctx, cancel := context.WithTimeout(context.Background(), fx.DefaultTimeout)
		defer cancel()
		_ = app.Stop(ctx)
	}
}

// Done is closed once Run has returned
func (a *Application) Done() <-chan struct{} {
	return a.doneChan
}

// Wait blocks until the application exits
func (a *Application) Wait() {
	<-a.doneChan
}

// LoadIdentity reads config.yaml for the service identity before any fx graph
// exists. On error the default identity is returned alongside it.
func LoadIdentity() (Identity, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return IdentityFor(nil), err
	}
	return IdentityFor(cfg), nil
}
