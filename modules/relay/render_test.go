package relay_test

import (
	"context"
	"html"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sharemail/modules/relay"
)

func newRenderer(t *testing.T, format relay.Format, opts ...relay.RendererOption) *relay.Renderer {
	t.Helper()
	r, err := relay.NewRenderer(relay.RenderConfig{
		Format:      format,
		BrandName:   "ThinkFit",
		BrandDomain: "thinkfit.in",
	}, opts...)
	require.NoError(t, err)
	return r
}

// contentBlock extracts the user content from a rendered HTML document.
func contentBlock(t *testing.T, doc string) string {
	t.Helper()
	const open = `<div class="content">`
	start := strings.Index(doc, open)
	require.NotEqual(t, -1, start, "content block not found")
	rest := doc[start+len(open):]
	end := strings.Index(rest, "</div>")
	require.NotEqual(t, -1, end)
	return rest[:end]
}

func TestRenderer_ButtonLabel(t *testing.T) {
	t.Parallel()

	r := newRenderer(t, relay.FormatHTML)

	tests := []struct {
		link  string
		label string
		style string
	}{
		{"https://app.thinkfit.in/invite?x=1", "Join ThinkFit", relay.BrandGradient},
		{"https://thinkfit.in/workouts/1", "Open ThinkFit", relay.BrandGradient},
		{"https://thinkfit.in/docs/share", "Open ThinkFit", relay.BrandGradient},
		{"https://example.com/document/42", "View Document", relay.DefaultGradient},
		{"https://docs.example.com/x", "View Document", relay.DefaultGradient},
		{"https://example.com/share/abc", "View Shared Content", relay.DefaultGradient},
		{"https://example.com/shared", "View Shared Content", relay.DefaultGradient},
		{"https://example.com/", "Open Link", relay.DefaultGradient},
	}

	for _, tt := range tests {
		t.Run(tt.link, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.label, r.ButtonLabel(tt.link))
			assert.Equal(t, tt.style, r.ButtonStyle(tt.link))
		})
	}
}

func TestRenderer_InviteLink(t *testing.T) {
	t.Parallel()

	r := newRenderer(t, relay.FormatHTML)
	msg, err := r.Render(context.Background(), relay.EmailRequest{
		FromEmail:  "alice@example.com",
		ToEmail:    "bob@example.com",
		Content:    "Join me",
		ButtonLink: "https://app.thinkfit.in/invite?x=1",
	})
	require.NoError(t, err)

	assert.True(t, msg.HasButton)
	assert.Equal(t, relay.Subject, msg.Subject)
	assert.Equal(t, "alice@example.com", msg.From)
	assert.Equal(t, "bob@example.com", msg.To)
	assert.Contains(t, msg.HTMLBody, ">Join ThinkFit</a>")
	assert.Contains(t, msg.HTMLBody, "#22c55e")
	assert.Contains(t, msg.HTMLBody, "#16a34a")
	assert.NotContains(t, msg.HTMLBody, "#667eea")
	assert.Equal(t, "Join me", msg.TextBody)
}

func TestRenderer_ShareLinkUsesDefaultPalette(t *testing.T) {
	t.Parallel()

	r := newRenderer(t, relay.FormatHTML)
	msg, err := r.Render(context.Background(), relay.EmailRequest{
		FromEmail:  "alice@example.com",
		ToEmail:    "bob@example.com",
		Content:    "Look",
		ButtonLink: "https://files.example.com/share/abc",
	})
	require.NoError(t, err)

	assert.Contains(t, msg.HTMLBody, ">View Shared Content</a>")
	assert.Contains(t, msg.HTMLBody, "#667eea")
	assert.Contains(t, msg.HTMLBody, "#764ba2")
	assert.NotContains(t, msg.HTMLBody, "#22c55e")
}

func TestRenderer_DroppedLinkHasNoButton(t *testing.T) {
	t.Parallel()

	fields := validFields()
	fields["button_link"] = "ftp://x.com"
	req, err := relay.Validate(fields)
	require.NoError(t, err)

	msg, err := newRenderer(t, relay.FormatHTML).Render(context.Background(), req)
	require.NoError(t, err)

	assert.False(t, msg.HasButton)
	assert.NotContains(t, msg.HTMLBody, `class="button"`)
	assert.NotContains(t, msg.HTMLBody, "ftp://")
}

func TestRenderer_TextMode(t *testing.T) {
	t.Parallel()

	content := "Line 1\nLine <2> & \"quotes\"\n\nhttps://example.com/share"
	msg, err := newRenderer(t, relay.FormatText).Render(context.Background(), relay.EmailRequest{
		FromEmail:  "alice@example.com",
		ToEmail:    "bob@example.com",
		Content:    content,
		ButtonLink: "https://example.com/share",
	})
	require.NoError(t, err)

	assert.Equal(t, content, msg.TextBody)
	assert.Empty(t, msg.HTMLBody)
	assert.False(t, msg.HasButton)
}

func TestRenderer_HTMLRoundTrip(t *testing.T) {
	t.Parallel()

	r := newRenderer(t, relay.FormatHTML)

	contents := []string{
		"Hello",
		"Line 1\nLine 2\n\nLine 4",
		"Tom & Jerry <script>alert('x')</script> \"quoted\"",
		"Unicode ✓ café 日本語",
		"windows\r\nline endings",
	}

	for _, content := range contents {
		msg, err := r.Render(context.Background(), relay.EmailRequest{
			FromEmail: "a@b.co",
			ToEmail:   "c@d.co",
			Content:   content,
		})
		require.NoError(t, err)

		block := contentBlock(t, msg.HTMLBody)
		assert.NotContains(t, block, "\n")
		assert.NotContains(t, block, "<script>")

		recovered := html.UnescapeString(strings.ReplaceAll(block, "<br>", "\n"))
		normalized := strings.ReplaceAll(content, "\r\n", "\n")
		assert.Equal(t, normalized, recovered)
		assert.Equal(t, content, msg.TextBody)
	}
}

func TestRenderer_HTMLEscapesContent(t *testing.T) {
	t.Parallel()

	r := newRenderer(t, relay.FormatHTML)
	msg, err := r.Render(context.Background(), relay.EmailRequest{
		FromEmail: "a@b.co",
		ToEmail:   "c@d.co",
		Content:   "a <b> & c\nd",
	})
	require.NoError(t, err)

	assert.Equal(t, "a &lt;b&gt; &amp; c<br>d", contentBlock(t, msg.HTMLBody))
}

func TestRenderer_CustomRules(t *testing.T) {
	t.Parallel()

	r := newRenderer(t, relay.FormatHTML,
		relay.WithLabelRules(
			relay.LabelRule{Match: relay.ContainsAny("/video/"), Label: "Watch"},
			relay.LabelRule{Match: relay.Always, Label: "Go"},
		),
		relay.WithStyleRules(relay.StyleRule{Match: relay.Always, Style: "#000"}),
	)

	assert.Equal(t, "Watch", r.ButtonLabel("https://x.io/video/1"))
	assert.Equal(t, "Go", r.ButtonLabel("https://thinkfit.in/invite"))
	assert.Equal(t, "#000", r.ButtonStyle("https://thinkfit.in"))
}

func TestNewRenderer_InvalidFormat(t *testing.T) {
	t.Parallel()

	_, err := relay.NewRenderer(relay.RenderConfig{Format: "markdown"})
	assert.ErrorIs(t, err, relay.ErrInvalidConfig)
}
