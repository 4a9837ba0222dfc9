// Package email delivers transactional messages through a pluggable provider.
//
// Sender is the provider abstraction. Three implementations ship with the
// package:
//   - SendGrid, via github.com/sendgrid/sendgrid-go (v3 mail send API)
//   - Postmark, via github.com/mrz1836/postmark
//   - DevSender, which writes messages to a local directory
//
// Every sender disables click and open tracking so that links in a message
// reach the recipient exactly as written.
//
// # Usage
//
//	sender, err := email.NewSender(email.Config{
//	    Provider:       email.ProviderSendGrid,
//	    SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
//	})
//	if err != nil {
//	    return err
//	}
//
//	res, err := sender.Send(ctx, email.Message{
//	    From:     "alice@example.com",
//	    To:       "bob@example.com",
//	    Subject:  "Shared Content",
//	    TextBody: "hello",
//	    HTMLBody: html,
//	})
//
// # Error Handling
//
//   - ErrInvalidConfig: a sender could not be built from Config
//   - ErrInvalidMessage: Message.Validate failed, nothing was sent
//   - ErrFailedToSendEmail: the provider call failed or was rejected
//
// Errors are wrapped, use errors.Is to match them.
//
// The templates subpackage renders HTML bodies with github.com/a-h/templ.
package email
