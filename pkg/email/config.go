package email

import (
	"fmt"
	"strings"
)

// Supported providers.
const (
	ProviderSendGrid = "sendgrid"
	ProviderPostmark = "postmark"
	ProviderDev      = "dev"
)

// Config selects the provider and carries its credentials.
// Only the fields of the selected provider are read.
type Config struct {
	Provider string `env:"EMAIL_PROVIDER" envDefault:"sendgrid"`

	SendGridAPIKey  string `env:"SENDGRID_API_KEY"`
	SendGridAPIHost string `env:"SENDGRID_API_HOST" envDefault:"https://api.sendgrid.com"`

	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	PostmarkAPIURL       string `env:"POSTMARK_API_URL"`

	DevDir string `env:"EMAIL_DEV_DIR" envDefault:"./tmp/emails"`
}

func (c Config) provider() string {
	return strings.ToLower(strings.TrimSpace(c.Provider))
}

// DisplayName is the human readable provider name.
func (c Config) DisplayName() string {
	switch c.provider() {
	case ProviderSendGrid:
		return "SendGrid"
	case ProviderPostmark:
		return "Postmark"
	case ProviderDev:
		return "Dev mailer"
	default:
		return "Email provider"
	}
}

// CredentialEnv names the environment variable an operator has to fix when
// the provider cannot be initialised.
func (c Config) CredentialEnv() string {
	switch c.provider() {
	case ProviderSendGrid:
		return "SENDGRID_API_KEY"
	case ProviderPostmark:
		return "POSTMARK_SERVER_TOKEN"
	case ProviderDev:
		return "EMAIL_DEV_DIR"
	default:
		return "EMAIL_PROVIDER"
	}
}

// NewSender builds the sender for the configured provider.
func NewSender(cfg Config) (Sender, error) {
	switch cfg.provider() {
	case ProviderSendGrid:
		return NewSendGridSender(cfg.SendGridAPIKey, cfg.SendGridAPIHost)
	case ProviderPostmark:
		return NewPostmarkSender(cfg.PostmarkServerToken, cfg.PostmarkAccountToken, cfg.PostmarkAPIURL)
	case ProviderDev:
		return NewDevSender(cfg.DevDir)
	default:
		return nil, fmt.Errorf("%w: unsupported provider %q", ErrInvalidConfig, cfg.Provider)
	}
}
