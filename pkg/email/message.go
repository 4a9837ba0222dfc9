package email

import (
	"context"
	"fmt"
	"strings"
)

// Sender delivers a single message through one provider.
// Implementations are safe for concurrent use.
type Sender interface {
	Send(ctx context.Context, msg Message) (Result, error)
	Name() string
}

// Message is a provider-neutral outgoing email with one sender and one recipient.
type Message struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Subject  string `json:"subject"`
	TextBody string `json:"text_body,omitempty"`
	HTMLBody string `json:"html_body,omitempty"`
}

// Validate checks the fields every provider requires.
func (m Message) Validate() error {
	switch {
	case strings.TrimSpace(m.From) == "":
		return fmt.Errorf("%w: from is required", ErrInvalidMessage)
	case strings.TrimSpace(m.To) == "":
		return fmt.Errorf("%w: to is required", ErrInvalidMessage)
	case strings.TrimSpace(m.Subject) == "":
		return fmt.Errorf("%w: subject is required", ErrInvalidMessage)
	case m.TextBody == "" && m.HTMLBody == "":
		return fmt.Errorf("%w: text or html body is required", ErrInvalidMessage)
	}
	return nil
}

// Result is what a provider reported for an accepted message.
type Result struct {
	StatusCode int
	MessageID  string
}
