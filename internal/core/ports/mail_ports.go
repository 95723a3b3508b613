package ports

import "context"

type MailMessage struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

type MailSender interface {
	Send(ctx context.Context, msg MailMessage) error
}
