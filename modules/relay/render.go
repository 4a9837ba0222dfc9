package relay

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrymomot/sharemail/pkg/email"
	"github.com/dmitrymomot/sharemail/pkg/email/templates"
	"github.com/dmitrymomot/sharemail/pkg/sanitizer"
)

// Format selects the body representation of outgoing messages.
type Format string

const (
	FormatHTML Format = "html"
	FormatText Format = "text"
)

// Subject is used for every relayed message.
const Subject = "Shared Content"

// Button backgrounds.
const (
	BrandGradient   = "linear-gradient(135deg, #22c55e 0%, #16a34a 100%)"
	DefaultGradient = "linear-gradient(135deg, #667eea 0%, #764ba2 100%)"
)

// LinkMatcher is a predicate over a button link.
type LinkMatcher func(link string) bool

// ContainsAny matches links containing at least one of subs.
func ContainsAny(subs ...string) LinkMatcher {
	return func(link string) bool {
		for _, s := range subs {
			if strings.Contains(link, s) {
				return true
			}
		}
		return false
	}
}

// Always matches every link.
func Always(string) bool { return true }

// LabelRule picks the button label. Rules are evaluated in order; the first
// match wins.
type LabelRule struct {
	Match LinkMatcher
	Label string
}

// StyleRule picks the button background. Evaluated like LabelRule, but
// independently of it.
type StyleRule struct {
	Match LinkMatcher
	Style string
}

// Brand identifies the product whose links get special treatment.
type Brand struct {
	Name   string
	Domain string
}

// DefaultLabelRules returns the label policy for brand.
func DefaultLabelRules(b Brand) []LabelRule {
	return []LabelRule{
		{Match: ContainsAny(b.Domain + "/invite"), Label: "Join " + b.Name},
		{Match: ContainsAny(b.Domain), Label: "Open " + b.Name},
		{Match: ContainsAny("document", "doc"), Label: "View Document"},
		{Match: ContainsAny("share", "shared"), Label: "View Shared Content"},
		{Match: Always, Label: "Open Link"},
	}
}

// DefaultStyleRules returns the style policy for brand.
func DefaultStyleRules(b Brand) []StyleRule {
	return []StyleRule{
		{Match: ContainsAny(b.Domain), Style: BrandGradient},
		{Match: Always, Style: DefaultGradient},
	}
}

// RenderedMessage is a message ready for dispatch.
type RenderedMessage struct {
	From      string
	To        string
	Subject   string
	TextBody  string
	HTMLBody  string
	HasButton bool
}

// Message converts m into the provider-neutral email.Message.
func (m RenderedMessage) Message() email.Message {
	return email.Message{
		From:     m.From,
		To:       m.To,
		Subject:  m.Subject,
		TextBody: m.TextBody,
		HTMLBody: m.HTMLBody,
	}
}

// Renderer builds RenderedMessages. It is immutable and safe for concurrent use.
type Renderer struct {
	format Format
	brand  Brand
	labels []LabelRule
	styles []StyleRule
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithLabelRules replaces the default label policy.
func WithLabelRules(rules ...LabelRule) RendererOption {
	return func(r *Renderer) {
		r.labels = rules
	}
}

// WithStyleRules replaces the default style policy.
func WithStyleRules(rules ...StyleRule) RendererOption {
	return func(r *Renderer) {
		r.styles = rules
	}
}

// NewRenderer creates a Renderer for cfg.
func NewRenderer(cfg RenderConfig, opts ...RendererOption) (*Renderer, error) {
	switch cfg.Format {
	case FormatHTML, FormatText:
	default:
		return nil, fmt.Errorf("%w: unknown body format %q", ErrInvalidConfig, cfg.Format)
	}

	brand := Brand{Name: cfg.BrandName, Domain: cfg.BrandDomain}
	r := &Renderer{
		format: cfg.Format,
		brand:  brand,
		labels: DefaultLabelRules(brand),
		styles: DefaultStyleRules(brand),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Format reports the configured body format.
func (r *Renderer) Format() Format {
	return r.format
}

// ButtonLabel returns the label of the first matching rule, or "" if none match.
func (r *Renderer) ButtonLabel(link string) string {
	for _, rule := range r.labels {
		if rule.Match(link) {
			return rule.Label
		}
	}
	return ""
}

// ButtonStyle returns the style of the first matching rule, or "" if none match.
func (r *Renderer) ButtonStyle(link string) string {
	for _, rule := range r.styles {
		if rule.Match(link) {
			return rule.Style
		}
	}
	return ""
}

// Render builds the outgoing message for req.
//
// The text body is always the trimmed content. In HTML mode the content is
// escaped, its line breaks become <br> and it is placed in the branded
// document together with the optional button.
func (r *Renderer) Render(ctx context.Context, req EmailRequest) (RenderedMessage, error) {
	msg := RenderedMessage{
		From:     req.FromEmail,
		To:       req.ToEmail,
		Subject:  Subject,
		TextBody: req.Content,
	}
	if r.format == FormatText {
		return msg, nil
	}

	props := templates.ShareProps{
		BrandName:   r.brand.Name,
		ContentHTML: sanitizer.HTMLParagraph(req.Content),
	}
	if req.HasButton() {
		props.Button = &templates.Button{
			Label:      r.ButtonLabel(req.ButtonLink),
			Href:       req.ButtonLink,
			Background: r.ButtonStyle(req.ButtonLink),
		}
	}

	html, err := templates.Render(ctx, templates.ShareEmail(props))
	if err != nil {
		return RenderedMessage{}, err
	}

	msg.HTMLBody = html
	msg.HasButton = props.Button != nil
	return msg, nil
}
