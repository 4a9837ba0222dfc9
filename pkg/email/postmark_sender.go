package email

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/mrz1836/postmark"
)

type postmarkSender struct {
	client *postmark.Client
}

// NewPostmarkSender creates a Postmark-backed sender. The account token is
// only needed for account-level APIs and may be empty. baseURL overrides the
// API endpoint when set.
func NewPostmarkSender(serverToken, accountToken, baseURL string) (Sender, error) {
	if serverToken == "" {
		return nil, fmt.Errorf("%w: Postmark server token is required", ErrInvalidConfig)
	}

	client := postmark.NewClient(serverToken, accountToken)
	if baseURL != "" {
		client.BaseURL = baseURL
	}
	return &postmarkSender{client: client}, nil
}

func (s *postmarkSender) Name() string { return ProviderPostmark }

// Send delivers msg through Postmark's transactional API with link and open
// tracking off. Postmark does not expose the HTTP status of an accepted
// message, so success is reported as 200 with the Postmark message id.
func (s *postmarkSender) Send(ctx context.Context, msg Message) (Result, error) {
	if err := msg.Validate(); err != nil {
		return Result{}, err
	}

	resp, err := s.client.SendEmail(ctx, postmark.Email{
		From:       msg.From,
		To:         msg.To,
		Subject:    msg.Subject,
		HTMLBody:   msg.HTMLBody,
		TextBody:   msg.TextBody,
		TrackOpens: false,
		TrackLinks: "None",
	})
	if err != nil {
		return Result{}, errors.Join(ErrFailedToSendEmail, err)
	}
	if resp.ErrorCode > 0 {
		return Result{}, errors.Join(
			ErrFailedToSendEmail,
			fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message),
		)
	}
	return Result{StatusCode: http.StatusOK, MessageID: resp.MessageID}, nil
}
