// Package notify delivers outbound email and SMS through the configured
// providers. Calls are synchronous: a provider failure fails the enclosing
// request, and nothing is queued or retried.
package notify

import "context"

type EmailSender interface {
	// SendEmail delivers one message. htmlBody may be empty for plain-text
	// mail.
	SendEmail(to, subject, textBody, htmlBody string) error
}

type SMSSender interface {
	// SendSMS delivers one message to an E.164 number and returns the
	// provider's message id.
	SendSMS(ctx context.Context, to, body string) (string, error)
}
