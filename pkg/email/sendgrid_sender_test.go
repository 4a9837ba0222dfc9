package email_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sharemail/pkg/email"
)

func testMessage() email.Message {
	return email.Message{
		From:     "alice@example.com",
		To:       "bob@example.com",
		Subject:  "Shared Content",
		TextBody: "hello https://example.com/a",
		HTMLBody: `<p>hello <a href="https://example.com/a">link</a></p>`,
	}
}

func TestNewSendGridSender(t *testing.T) {
	t.Parallel()

	sender, err := email.NewSendGridSender("", "")
	assert.Nil(t, sender)
	assert.ErrorIs(t, err, email.ErrInvalidConfig)

	sender, err = email.NewSendGridSender("key", "")
	require.NoError(t, err)
	assert.Equal(t, email.ProviderSendGrid, sender.Name())
}

func TestSendGridSender_Send(t *testing.T) {
	t.Parallel()

	t.Run("posts mail with tracking disabled", func(t *testing.T) {
		t.Parallel()

		var (
			gotPath string
			gotAuth string
			payload map[string]any
		)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")
			body, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(body, &payload)
			w.Header().Set("X-Message-Id", "sg-123")
			w.WriteHeader(http.StatusAccepted)
		}))
		defer srv.Close()

		sender, err := email.NewSendGridSender("sg-key", srv.URL)
		require.NoError(t, err)

		res, err := sender.Send(context.Background(), testMessage())
		require.NoError(t, err)
		assert.Equal(t, http.StatusAccepted, res.StatusCode)
		assert.Equal(t, "sg-123", res.MessageID)

		assert.Equal(t, "/v3/mail/send", gotPath)
		assert.Equal(t, "Bearer sg-key", gotAuth)
		require.NotNil(t, payload)

		assert.Equal(t, "Shared Content", payload["subject"])
		from, ok := payload["from"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "alice@example.com", from["email"])

		content, ok := payload["content"].([]any)
		require.True(t, ok)
		require.Len(t, content, 2)
		assert.Equal(t, "text/plain", content[0].(map[string]any)["type"])
		assert.Equal(t, "text/html", content[1].(map[string]any)["type"])

		tracking, ok := payload["tracking_settings"].(map[string]any)
		require.True(t, ok, "tracking_settings must be present")
		click := tracking["click_tracking"].(map[string]any)
		assert.Equal(t, false, click["enable"])
		assert.Equal(t, false, click["enable_text"])
		open := tracking["open_tracking"].(map[string]any)
		assert.Equal(t, false, open["enable"])
	})

	t.Run("provider rejection is an error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"errors":[{"message":"bad key"}]}`))
		}))
		defer srv.Close()

		sender, err := email.NewSendGridSender("bad", srv.URL)
		require.NoError(t, err)

		res, err := sender.Send(context.Background(), testMessage())
		require.ErrorIs(t, err, email.ErrFailedToSendEmail)
		assert.Contains(t, err.Error(), "bad key")
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	})

	t.Run("invalid message is not sent", func(t *testing.T) {
		t.Parallel()

		called := false
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			called = true
			w.WriteHeader(http.StatusAccepted)
		}))
		defer srv.Close()

		sender, err := email.NewSendGridSender("key", srv.URL)
		require.NoError(t, err)

		msg := testMessage()
		msg.To = ""
		_, err = sender.Send(context.Background(), msg)
		assert.ErrorIs(t, err, email.ErrInvalidMessage)
		assert.False(t, called)
	})

	t.Run("unreachable host", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		sender, err := email.NewSendGridSender("key", url)
		require.NoError(t, err)

		_, err = sender.Send(context.Background(), testMessage())
		assert.ErrorIs(t, err, email.ErrFailedToSendEmail)
	})
}
