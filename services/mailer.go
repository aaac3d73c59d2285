package services

import (
	"context"
	"log/slog"

	"travel-gateway/pubsub"
)

// Mail is an outgoing message.
type Mail struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"-"`
}

// Mailer delivers mail. Delivery is outside this service; the default
// implementation only records the attempt.
type Mailer interface {
	Send(ctx context.Context, mail Mail) error
}

// LogMailer writes each message to the log and publishes EMAIL_SENT.
type LogMailer struct {
	notifier Notifier
}

func NewLogMailer(notifier Notifier) *LogMailer {
	return &LogMailer{notifier: notifier}
}

type emailSentPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Status  string `json:"status"`
}

func (m *LogMailer) Send(ctx context.Context, mail Mail) error {
	slog.Info("email queued", "to", mail.To, "subject", mail.Subject, "bytes", len(mail.Body))
	notifyQuietly(ctx, m.notifier, pubsub.EventEmailSent, emailSentPayload{
		To:      mail.To,
		Subject: mail.Subject,
		Status:  "success",
	})
	return nil
}
