package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const sendGridSendPath = "/v3/mail/send"

type sendGridSender struct {
	apiKey string
	host   string
}

// NewSendGridSender creates a sender for the SendGrid v3 mail API.
// An empty host falls back to the public API endpoint.
func NewSendGridSender(apiKey, host string) (Sender, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: SendGrid API key is required", ErrInvalidConfig)
	}
	if host == "" {
		host = "https://api.sendgrid.com"
	}
	return &sendGridSender{apiKey: apiKey, host: host}, nil
}

func (s *sendGridSender) Name() string { return ProviderSendGrid }

// Send posts msg to /v3/mail/send with click and open tracking disabled.
// SendGrid answers 202 on accept; any status >= 400 is returned as an error
// carrying the response body.
func (s *sendGridSender) Send(ctx context.Context, msg Message) (Result, error) {
	if err := msg.Validate(); err != nil {
		return Result{}, err
	}

	req := sendgrid.GetRequest(s.apiKey, sendGridSendPath, s.host)
	req.Method = rest.Post
	req.Body = mail.GetRequestBody(buildSendGridMail(msg))

	resp, err := sendgrid.MakeRequestWithContext(ctx, req)
	if err != nil {
		return Result{}, errors.Join(ErrFailedToSendEmail, err)
	}
	if resp.StatusCode >= 400 {
		return Result{StatusCode: resp.StatusCode}, errors.Join(
			ErrFailedToSendEmail,
			fmt.Errorf("sendgrid error: status %d: %s", resp.StatusCode, resp.Body),
		)
	}

	var messageID string
	if ids := resp.Headers["X-Message-Id"]; len(ids) > 0 {
		messageID = ids[0]
	}
	return Result{StatusCode: resp.StatusCode, MessageID: messageID}, nil
}

func buildSendGridMail(msg Message) *mail.SGMailV3 {
	// text/plain has to precede text/html
	var contents []*mail.Content
	if msg.TextBody != "" {
		contents = append(contents, mail.NewContent("text/plain", msg.TextBody))
	}
	if msg.HTMLBody != "" {
		contents = append(contents, mail.NewContent("text/html", msg.HTMLBody))
	}

	m := mail.NewV3MailInit(mail.NewEmail("", msg.From), msg.Subject, mail.NewEmail("", msg.To), contents...)

	tracking := mail.NewTrackingSettings()
	tracking.SetClickTracking(mail.NewClickTrackingSetting().SetEnable(false).SetEnableText(false))
	tracking.SetOpenTracking(mail.NewOpenTrackingSetting().SetEnable(false))
	m.SetTrackingSettings(tracking)

	return m
}
