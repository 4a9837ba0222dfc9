package relay

import "github.com/dmitrymomot/sharemail/pkg/email"

// Provider is the outcome of initialising the email provider at startup:
// either a usable Sender or the error that prevented building one.
// It is read-only once constructed.
type Provider struct {
	Sender email.Sender
	Err    error
}

// NewProvider builds the sender described by cfg. A failure is captured in
// the returned value rather than returned, so the service can still start and
// report the problem per request.
func NewProvider(cfg email.Config) Provider {
	sender, err := email.NewSender(cfg)
	if err != nil {
		return Provider{Err: &NotConfiguredError{
			Provider: cfg.DisplayName(),
			EnvVar:   cfg.CredentialEnv(),
			Cause:    err,
		}}
	}
	return Provider{Sender: sender}
}

// Configured reports whether messages can be sent.
func (p Provider) Configured() bool {
	return p.Err == nil && p.Sender != nil
}

// Name is the sender name, or "" when not configured.
func (p Provider) Name() string {
	if p.Sender == nil {
		return ""
	}
	return p.Sender.Name()
}

// Check returns nil when configured and an error matching
// ErrProviderNotConfigured otherwise.
func (p Provider) Check() error {
	if p.Configured() {
		return nil
	}
	if p.Err != nil {
		return p.Err
	}
	return &NotConfiguredError{Provider: "Email provider", EnvVar: "EMAIL_PROVIDER"}
}
