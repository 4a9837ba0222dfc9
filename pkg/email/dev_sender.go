package email

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DevSender implements Sender for local development.
// It saves messages to a directory instead of sending them.
type DevSender struct {
	dir string
}

// NewDevSender creates a development sender that writes messages under dir.
// The directory is created on first send.
func NewDevSender(dir string) (Sender, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("%w: dev sender directory is required", ErrInvalidConfig)
	}
	return &DevSender{dir: dir}, nil
}

func (d *DevSender) Name() string { return ProviderDev }

// emailMetadata is the JSON sidecar written next to the bodies.
type emailMetadata struct {
	MessageID string `json:"message_id"`
	Timestamp string `json:"timestamp"`
	From      string `json:"from"`
	To        string `json:"to"`
	Subject   string `json:"subject"`
}

// Send writes <timestamp>_<subject>_<id>.html, .txt and .json files.
// Bodies that are empty are skipped.
func (d *DevSender) Send(ctx context.Context, msg Message) (Result, error) {
	if err := msg.Validate(); err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrFailedToSendEmail, err)
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return Result{}, fmt.Errorf("%w: failed to create directory: %v", ErrFailedToSendEmail, err)
	}

	now := time.Now()
	id := uuid.NewString()
	base := fmt.Sprintf("%s_%s_%s", now.Format("2006_01_02_150405"), sanitizeFilename(msg.Subject), id[:8])

	files := []struct {
		ext  string
		body string
	}{
		{".html", msg.HTMLBody},
		{".txt", msg.TextBody},
	}
	for _, f := range files {
		if f.body == "" {
			continue
		}
		if err := os.WriteFile(filepath.Join(d.dir, base+f.ext), []byte(f.body), 0o644); err != nil {
			return Result{}, fmt.Errorf("%w: failed to write %s file: %v", ErrFailedToSendEmail, f.ext, err)
		}
	}

	metadata, err := json.MarshalIndent(emailMetadata{
		MessageID: id,
		Timestamp: now.Format(time.RFC3339),
		From:      msg.From,
		To:        msg.To,
		Subject:   msg.Subject,
	}, "", "  ")
	if err != nil {
		return Result{}, fmt.Errorf("%w: failed to marshal metadata: %v", ErrFailedToSendEmail, err)
	}
	if err := os.WriteFile(filepath.Join(d.dir, base+".json"), metadata, 0o644); err != nil {
		return Result{}, fmt.Errorf("%w: failed to write JSON file: %v", ErrFailedToSendEmail, err)
	}

	return Result{StatusCode: http.StatusOK, MessageID: id}, nil
}

var sanitizeRegex = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

// sanitizeFilename converts a string into a safe, lower-case filename fragment.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = sanitizeRegex.ReplaceAllString(s, "")

	const maxLength = 100
	if len(s) > maxLength {
		s = s[:maxLength]
	}
	if s == "" {
		s = "email"
	}
	return strings.ToLower(s)
}
