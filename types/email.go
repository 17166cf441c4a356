package types

import "context"

// EmailSender is the outbound mail transport collaborator. Implementations
// make exactly one synchronous delivery attempt per call; any retry policy
// belongs behind this interface, never in the calling endpoint.
type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// EmailMessage is one fully composed plain-text notification.
type EmailMessage struct {
	FromName    string
	FromAddress string
	To          string
	ReplyTo     string
	Subject     string
	Text        string
}
