package bootstrap

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kbukum/regkit/collection"
	"github.com/kbukum/regkit/logger"
	"github.com/kbukum/regkit/resolver"
	"github.com/kbukum/regkit/version"
)

// App wires together configuration, logging, service registration, and
// provider construction with uniform lifecycle management. The type
// parameter C is the config type, which must satisfy the Config interface.
// Any struct embedding config.ServiceConfig automatically satisfies Config.
//
// Example:
//
//	app, err := bootstrap.NewApp(&myConfig)
//	app.OnRegister(func(ctx context.Context, a *bootstrap.App[*MyConfig]) error {
//	    // a.Cfg is *MyConfig, fully typed
//	    return register.AddSingletonInstanceFor[Cache](a.Services, "redis", cache)
//	})
//	app.RunTask(ctx, task)
type App[C Config] struct {
	Name     string
	Version  string
	Cfg      C
	Services *collection.ServiceCollection
	Logger   *logger.Logger
	Summary  *Summary

	provider        *resolver.Provider
	gracefulTimeout time.Duration
	onRegister      []func(ctx context.Context, app *App[C]) error

	onStart []Hook
	onStop  []Hook
}

// NewApp creates a new application instance from a typed config.
// It applies defaults, validates the config, initializes the logger, and
// creates the service collection the registration phase will write into.
func NewApp[C Config](cfg C, opts ...Option) (*App[C], error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	base := cfg.GetServiceConfig()
	if base.Version == "" {
		base.Version = version.GetShortVersion()
	}

	app := &App[C]{
		Name:            base.Name,
		Version:         base.Version,
		Cfg:             cfg,
		gracefulTimeout: 15 * time.Second,
	}

	// Apply options (may override logger, metrics, timeout).
	o := resolveOptions(opts)
	if o.gracefulTimeout != nil {
		app.gracefulTimeout = *o.gracefulTimeout
	}

	// Logger: use custom if provided, otherwise init from config.
	if o.logger != nil {
		app.Logger = o.logger
	} else {
		logger.Init(&base.Logging)
		app.Logger = logger.GetGlobalLogger()
	}

	collectionOpts := []collection.Option{
		collection.WithLogger(app.Logger.WithComponent("collection")),
	}
	if base.Registry.CapacityHint > 0 {
		collectionOpts = append(collectionOpts, collection.WithCapacity(base.Registry.CapacityHint))
	}
	if base.Registry.WarnOnReplace {
		collectionOpts = append(collectionOpts, collection.WithWarnOnReplace())
	}
	if o.metrics != nil {
		collectionOpts = append(collectionOpts, collection.WithMetrics(o.metrics))
	}
	app.Services = collection.New(collectionOpts...)

	app.Summary = NewSummary(base.Name, base.Version)
	return app, nil
}

// OnRegister registers a callback to run during the registration phase.
// Callbacks run in registration order before the provider is built.
func (a *App[C]) OnRegister(fn func(ctx context.Context, app *App[C]) error) {
	a.onRegister = append(a.onRegister, fn)
}

// Provider returns the resolution provider. It is nil until startup has
// completed the registration phase.
func (a *App[C]) Provider() *resolver.Provider {
	return a.provider
}

// RunTask executes a finite task with the full bootstrap lifecycle:
// Register → Build provider → OnStart hooks → task → OnStop hooks.
// The task is canceled on SIGINT/SIGTERM and given the built provider.
//
// Example:
//
//	app, _ := bootstrap.NewApp(&cfg)
//	app.RunTask(ctx, func(ctx context.Context, p *resolver.Provider) error {
//	    return processData(ctx, p)
//	})
func (a *App[C]) RunTask(ctx context.Context, task func(ctx context.Context, p *resolver.Provider) error) error {
	if err := a.startup(ctx); err != nil {
		return err
	}

	// Set up signal-based cancellation for the task
	taskCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		select {
		case sig := <-sigCh:
			a.Logger.Info("Received signal, canceling task", map[string]interface{}{
				"signal": sig.String(),
			})
			cancel()
		case <-taskCtx.Done():
		}
	}()

	taskErr := task(taskCtx, a.provider)

	if stopErr := a.stop(); stopErr != nil {
		if taskErr != nil {
			return taskErr
		}
		return stopErr
	}

	return taskErr
}

// startup performs the initialization sequence: registration callbacks,
// provider construction, and OnStart hooks.
func (a *App[C]) startup(ctx context.Context) error {
	start := time.Now()

	a.Logger.Info("Starting application", map[string]interface{}{
		"name":    a.Name,
		"version": a.Version,
	})

	// Phase 1: Register: run registration callbacks
	if err := a.register(ctx); err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	// Phase 2: Build the provider from the registered collection
	p, err := resolver.Build(a.Services,
		resolver.WithLogger(a.Logger.WithComponent("resolver")),
	)
	if err != nil {
		return fmt.Errorf("building provider: %w", err)
	}
	a.provider = p

	if err := runHooks(ctx, a.onStart); err != nil {
		return fmt.Errorf("onStart hook failed: %w", err)
	}

	a.Summary.SetStartupDuration(time.Since(start))
	a.DisplaySummary()

	return nil
}

// register runs registration callbacks (Phase 1).
func (a *App[C]) register(ctx context.Context) error {
	if len(a.onRegister) == 0 {
		return nil
	}

	a.Logger.Info("Phase 1: Running registration callbacks", map[string]interface{}{
		"count": len(a.onRegister),
	})

	for _, fn := range a.onRegister {
		if err := fn(ctx, a); err != nil {
			return err
		}
	}

	a.Logger.Info("Phase 1: Registration complete", map[string]interface{}{
		"descriptors": a.Services.Len(),
	})
	return nil
}

// DisplaySummary prints the startup summary, collecting the registration
// table from the service collection.
func (a *App[C]) DisplaySummary() {
	a.Summary.DisplaySummary(a.Services, a.Logger)
}

// Shutdown performs graceful shutdown. Use when managing your own lifecycle.
func (a *App[C]) Shutdown(ctx context.Context) error {
	return a.stop()
}

// stop runs OnStop hooks within the graceful timeout.
func (a *App[C]) stop() error {
	a.Logger.Info("Shutting down application", map[string]interface{}{
		"timeout": a.gracefulTimeout.String(),
	})

	ctx, cancel := context.WithTimeout(context.Background(), a.gracefulTimeout)
	defer cancel()

	var shutdownErr error
	if err := runHooks(ctx, a.onStop); err != nil {
		a.Logger.Error("OnStop hook error", map[string]interface{}{
			"error": err.Error(),
		})
		shutdownErr = err
	}

	a.Logger.Info("Application shutdown complete")
	return shutdownErr
}
