// Package bootstrap orchestrates the lifecycle of a program built on the
// registration toolkit.
//
// It validates typed configuration, initializes logging, runs registration
// callbacks against a service collection, builds a provider, and handles
// graceful shutdown on OS signals.
//
// # Quick Start
//
//	app, err := bootstrap.NewApp(&cfg)
//	app.OnRegister(func(ctx context.Context, a *bootstrap.App[*MyConfig]) error {
//	    return register.AddSingletonInstanceFor[Logger](a.Services, "console", myLogger)
//	})
//	app.RunTask(ctx, func(ctx context.Context, p *resolver.Provider) error {
//	    return runService(ctx, p)
//	})
package bootstrap
