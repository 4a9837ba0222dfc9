package relay_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sharemail/modules/relay"
	"github.com/dmitrymomot/sharemail/pkg/config"
)

func TestConfig_Defaults(t *testing.T) {
	t.Parallel()

	var cfg relay.Config
	require.NoError(t, config.Load(&cfg, config.WithEnvironment(map[string]string{})))

	assert.False(t, cfg.Debug)
	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, "sendgrid", cfg.Email.Provider)
	assert.Equal(t, "./tmp/emails", cfg.Email.DevDir)
	assert.Equal(t, relay.FormatHTML, cfg.Render.Format)
	assert.Equal(t, "ThinkFit", cfg.Render.BrandName)
	assert.Equal(t, "thinkfit.in", cfg.Render.BrandDomain)
	assert.Equal(t, relay.ModeAsync, cfg.Dispatch.Mode)
	assert.Equal(t, 8, cfg.Dispatch.Workers)
	assert.Equal(t, 64, cfg.Dispatch.QueueSize)
	assert.Equal(t, 30*time.Second, cfg.Dispatch.Timeout)
	assert.Empty(t, cfg.CORSAllowedOrigins)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_FromEnvironment(t *testing.T) {
	t.Parallel()

	var cfg relay.Config
	require.NoError(t, config.Load(&cfg, config.WithEnvironment(map[string]string{
		"PORT":                  "8080",
		"DEBUG":                 "true",
		"EMAIL_PROVIDER":        "postmark",
		"POSTMARK_SERVER_TOKEN": "tok",
		"BODY_FORMAT":           "text",
		"DISPATCH_MODE":         "sync",
		"DISPATCH_TIMEOUT":      "5s",
		"CORS_ALLOWED_ORIGINS":  "https://a.example,https://b.example",
	})))

	assert.True(t, cfg.Debug)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "postmark", cfg.Email.Provider)
	assert.Equal(t, "tok", cfg.Email.PostmarkServerToken)
	assert.Equal(t, relay.FormatText, cfg.Render.Format)
	assert.Equal(t, relay.ModeSync, cfg.Dispatch.Mode)
	assert.Equal(t, 5*time.Second, cfg.Dispatch.Timeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	valid := func() relay.Config {
		return relay.Config{
			Render:   relay.RenderConfig{Format: relay.FormatHTML},
			Dispatch: relay.DispatchConfig{Mode: relay.ModeAsync, Workers: 1, QueueSize: 0, Timeout: time.Second},
		}
	}

	tests := map[string]func(*relay.Config){
		"format":  func(c *relay.Config) { c.Render.Format = "pdf" },
		"mode":    func(c *relay.Config) { c.Dispatch.Mode = "batch" },
		"workers": func(c *relay.Config) { c.Dispatch.Workers = 0 },
		"queue":   func(c *relay.Config) { c.Dispatch.QueueSize = -1 },
		"timeout": func(c *relay.Config) { c.Dispatch.Timeout = -time.Second },
	}

	require.NoError(t, valid().Validate())
	for name, mutate := range tests {
		cfg := valid()
		mutate(&cfg)
		assert.ErrorIs(t, cfg.Validate(), relay.ErrInvalidConfig, name)
	}

	syncCfg := valid()
	syncCfg.Dispatch = relay.DispatchConfig{Mode: relay.ModeSync}
	assert.NoError(t, syncCfg.Validate())
}
