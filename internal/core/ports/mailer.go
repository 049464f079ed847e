package ports

import "context"

// MailMessage is a plain-text email.
type MailMessage struct {
	To      string
	Subject string
	Body    string
}

// MailSender delivers a message synchronously.
type MailSender interface {
	Send(ctx context.Context, msg MailMessage) error
}

// MailQueue accepts messages for best-effort background delivery.
type MailQueue interface {
	Enqueue(msg MailMessage)
}
