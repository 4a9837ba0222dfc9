package relay

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dmitrymomot/sharemail/handler"
	"github.com/dmitrymomot/sharemail/pkg/binder"
	"github.com/dmitrymomot/sharemail/pkg/clientip"
	"github.com/dmitrymomot/sharemail/pkg/requestid"
)

// RouterOptions configures the relay router.
type RouterOptions struct {
	// CORSAllowedOrigins enables credentialed CORS for the listed origins.
	CORSAllowedOrigins []string
}

// Handle returns the relay router with default options.
func (s *Service) Handle() http.Handler {
	return Router(s, RouterOptions{})
}

// Router mounts the relay API:
//
//	GET  /health
//	POST /send-email
//
// Unknown paths answer 404 and known paths with the wrong method answer 405,
// both with the JSON error envelope.
func Router(s *Service, opts RouterOptions) chi.Router {
	r := chi.NewRouter()

	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware)
	r.Use(middleware.Recoverer)
	if len(opts.CORSAllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   opts.CORSAllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With", requestid.Header},
			ExposedHeaders:   []string{requestid.Header},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.NotFound(handler.ErrorRoute(s.errorHandler, handler.ErrNotFound))
	r.MethodNotAllowed(handler.ErrorRoute(s.errorHandler, handler.ErrMethodNotAllowed))

	r.Get("/health", handler.Wrap(s.health,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))

	r.With(s.requireProvider).Post("/send-email", handler.Wrap(s.sendEmail,
		handler.WithBinders[handler.Context, map[string]any](binder.JSON()),
		handler.WithErrorHandler[handler.Context, map[string]any](s.errorHandler),
	))

	return r
}
