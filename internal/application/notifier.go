package application

import (
	"context"

	"github.com/webcraft-academy/elearn-api/pkg/helpers"
	"github.com/webcraft-academy/elearn-api/pkg/mailer"
)

// Notifier delivers a notification email out of band. Services treat
// delivery as best-effort: a failed Send is logged, never returned to
// the caller.
type Notifier interface {
	Send(ctx context.Context, job mailer.EmailJob) error
}

// QueueNotifier enqueues email jobs on RabbitMQ for the email worker.
type QueueNotifier struct {
	Pub *helpers.RabbitPublisher
}

func NewQueueNotifier(pub *helpers.RabbitPublisher) *QueueNotifier {
	return &QueueNotifier{Pub: pub}
}

func (n *QueueNotifier) Send(ctx context.Context, job mailer.EmailJob) error {
	return n.Pub.PublishJSON(ctx, job)
}

// NopNotifier discards every job. Used in tests and when sending is
// disabled by configuration.
type NopNotifier struct{}

func (NopNotifier) Send(context.Context, mailer.EmailJob) error { return nil }
