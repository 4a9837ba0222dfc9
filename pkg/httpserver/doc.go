// Package httpserver runs an http.Handler with configurable timeouts, slog
// lifecycle logging and graceful shutdown.
//
// Run binds the listener synchronously (so bind errors surface immediately as
// ErrStart), serves in a goroutine and blocks until the context is cancelled,
// SIGINT/SIGTERM arrives or Shutdown is called. Shutdown waits for in-flight
// requests up to the shutdown timeout and is safe to call repeatedly.
//
// Request contexts derive from the Run context without its cancellation, so
// in-flight handlers are drained by Shutdown rather than cancelled abruptly.
//
// # Usage
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
package httpserver
