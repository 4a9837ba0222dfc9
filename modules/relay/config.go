package relay

import (
	"fmt"
	"time"

	"github.com/dmitrymomot/sharemail/pkg/email"
	"github.com/dmitrymomot/sharemail/pkg/httpserver"
)

// Config is the full process configuration, loaded from the environment.
type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server   httpserver.Config
	Email    email.Config
	Render   RenderConfig
	Dispatch DispatchConfig

	// Browser origins allowed to call the API with credentials.
	// Empty disables CORS handling.
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

// RenderConfig controls message rendering.
type RenderConfig struct {
	Format      Format `env:"BODY_FORMAT" envDefault:"html"`
	BrandName   string `env:"BRAND_NAME" envDefault:"ThinkFit"`
	BrandDomain string `env:"BRAND_DOMAIN" envDefault:"thinkfit.in"`
}

// DispatchConfig controls how provider calls are executed.
type DispatchConfig struct {
	Mode      Mode          `env:"DISPATCH_MODE" envDefault:"async"`
	Workers   int           `env:"DISPATCH_WORKERS" envDefault:"8"`
	QueueSize int           `env:"DISPATCH_QUEUE_SIZE" envDefault:"64"`
	Timeout   time.Duration `env:"DISPATCH_TIMEOUT" envDefault:"30s"`
}

// Validate rejects settings the service cannot run with.
func (c Config) Validate() error {
	switch c.Render.Format {
	case FormatHTML, FormatText:
	default:
		return fmt.Errorf("%w: BODY_FORMAT must be %q or %q, got %q", ErrInvalidConfig, FormatHTML, FormatText, c.Render.Format)
	}

	switch c.Dispatch.Mode {
	case ModeSync:
	case ModeAsync:
		if c.Dispatch.Workers < 1 {
			return fmt.Errorf("%w: DISPATCH_WORKERS must be positive", ErrInvalidConfig)
		}
		if c.Dispatch.QueueSize < 0 {
			return fmt.Errorf("%w: DISPATCH_QUEUE_SIZE must not be negative", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: DISPATCH_MODE must be %q or %q, got %q", ErrInvalidConfig, ModeSync, ModeAsync, c.Dispatch.Mode)
	}

	if c.Dispatch.Timeout < 0 {
		return fmt.Errorf("%w: DISPATCH_TIMEOUT must not be negative", ErrInvalidConfig)
	}
	return nil
}
