// Package bootstrap runs a configured command through a uniform lifecycle:
// defaults, validation, logger setup, start hooks, the task itself, then stop
// hooks within a graceful timeout. SIGINT and SIGTERM cancel the task's
// context.
//
//	app, err := bootstrap.NewApp(&cfg)
//	app.OnStart(initTracing)
//	app.OnStop(flushTracing)
//	err = app.RunTask(ctx, func(ctx context.Context) error {
//	    return runRecipe(ctx, cfg.Recipe)
//	})
package bootstrap
