package relay

import (
	"strings"

	"github.com/dmitrymomot/sharemail/pkg/sanitizer"
	"github.com/dmitrymomot/sharemail/pkg/validator"
)

const (
	fieldFromEmail  = "from_email"
	fieldToEmail    = "to_email"
	fieldContent    = "content"
	fieldButtonLink = "button_link"
)

// EmailRequest is a validated send request. All fields are trimmed.
type EmailRequest struct {
	FromEmail string
	ToEmail   string
	Content   string
	// ButtonLink is empty unless the caller sent an http(s) URL.
	ButtonLink string
}

// HasButton reports whether a call-to-action link survived validation.
func (r EmailRequest) HasButton() bool {
	return r.ButtonLink != ""
}

// Validate turns decoded JSON fields into an EmailRequest.
//
// Checks run in a fixed order and the first failure is returned as a
// *validator.ValidationError: presence of from_email, to_email and content,
// then the format of from_email and to_email. An empty map yields
// ErrEmptyRequest. A button_link that is not an http(s) URL is dropped
// silently.
func Validate(fields map[string]any) (EmailRequest, error) {
	if len(fields) == 0 {
		return EmailRequest{}, ErrEmptyRequest
	}

	req := EmailRequest{
		FromEmail: stringField(fields, fieldFromEmail),
		ToEmail:   stringField(fields, fieldToEmail),
		Content:   stringField(fields, fieldContent),
	}

	err := validator.ApplyFirst(
		validator.StringValue(fieldFromEmail, fields[fieldFromEmail]),
		validator.RequiredString(fieldFromEmail, req.FromEmail),
		validator.StringValue(fieldToEmail, fields[fieldToEmail]),
		validator.RequiredString(fieldToEmail, req.ToEmail),
		validator.StringValue(fieldContent, fields[fieldContent]),
		validator.RequiredString(fieldContent, req.Content),
		validator.EmailAddress(fieldFromEmail, req.FromEmail),
		validator.EmailAddress(fieldToEmail, req.ToEmail),
	)
	if err != nil {
		return EmailRequest{}, err
	}

	if link := stringField(fields, fieldButtonLink); isHTTPURL(link) {
		req.ButtonLink = link
	}

	return req, nil
}

func stringField(fields map[string]any, name string) string {
	s, _ := fields[name].(string)
	return sanitizer.Trim(s)
}

func isHTTPURL(link string) bool {
	return strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://")
}
