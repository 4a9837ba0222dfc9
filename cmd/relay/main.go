// Command relay runs the sharemail HTTP notification relay.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrymomot/sharemail/modules/relay"
	"github.com/dmitrymomot/sharemail/pkg/async"
	"github.com/dmitrymomot/sharemail/pkg/clientip"
	"github.com/dmitrymomot/sharemail/pkg/config"
	"github.com/dmitrymomot/sharemail/pkg/httpserver"
	"github.com/dmitrymomot/sharemail/pkg/logger"
	"github.com/dmitrymomot/sharemail/pkg/requestid"
)

const serviceName = "sharemail-relay"

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("relay stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg relay.Config
	if err := config.Load(&cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.New(
		logger.WithMode(cfg.Debug, serviceName),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	)
	slog.SetDefault(log)

	provider := relay.NewProvider(cfg.Email)
	if provider.Configured() {
		log.Info("email provider initialised", logger.Provider(provider.Name()))
	} else {
		// the service still starts and answers 500 on /send-email
		log.Error("email provider not configured", logger.Error(provider.Err))
	}

	renderer, err := relay.NewRenderer(cfg.Render)
	if err != nil {
		return err
	}

	var dispatcher *relay.Dispatcher
	if provider.Configured() {
		opts := []relay.DispatcherOption{
			relay.WithTimeout(cfg.Dispatch.Timeout),
			relay.WithDispatchLogger(log.With(logger.Component("dispatcher"))),
		}
		if cfg.Dispatch.Mode == relay.ModeAsync {
			pool := async.NewPool(cfg.Dispatch.Workers, cfg.Dispatch.QueueSize)
			// closed after the server has drained, so queued dispatches finish
			defer pool.Close()
			opts = append(opts, relay.WithPool(pool))
		}
		dispatcher = relay.NewDispatcher(provider.Sender, opts...)
	}

	svc := relay.NewService(provider, renderer, dispatcher,
		relay.WithLogger(log.With(logger.Component("relay"))),
	)

	server := httpserver.NewFromConfig(cfg.Server,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(l *slog.Logger) {
			l.Info("relay ready",
				slog.String("body_format", string(cfg.Render.Format)),
				slog.String("dispatch_mode", string(cfg.Dispatch.Mode)),
				slog.Bool("provider_configured", provider.Configured()),
			)
		}),
	)

	return server.Run(ctx, relay.Router(svc, relay.RouterOptions{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	}))
}
