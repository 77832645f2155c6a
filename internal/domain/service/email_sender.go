package service

import "context"

// EmailSender delivers notification content to a subscriber's email address.
type EmailSender interface {
	Send(ctx context.Context, to, subject, htmlBody, textBody string) error
}
