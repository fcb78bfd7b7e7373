package watcher

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mx-watch/notifier-alerts/internal/alert"
)

var ErrPublishAlert = errors.New("failed to publish alert")

// Publisher emits an alert to some destination.
type Publisher interface {
	Publish(ctx context.Context, a alert.Alert) error
}

// JSONPublisher sends a value serialized as JSON to a subject.
type JSONPublisher interface {
	PublishJSON(ctx context.Context, subject string, v any) error
}

// LogPublisher writes alerts as WARN records. The record message is the alert
// text.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, a alert.Alert) error {
	p.logger.Warn(a.String(),
		slog.String("hash", a.TxHash),
		slog.String("address", a.Address),
		slog.String("identifier", a.Identifier),
		slog.String("block", a.BlockHash),
	)

	return nil
}

// NatsPublisher forwards alerts as JSON on a NATS subject.
type NatsPublisher struct {
	client  JSONPublisher
	subject string
}

func NewNatsPublisher(client JSONPublisher, subject string) *NatsPublisher {
	return &NatsPublisher{
		client:  client,
		subject: subject,
	}
}

func (p *NatsPublisher) Publish(ctx context.Context, a alert.Alert) error {
	err := p.client.PublishJSON(ctx, p.subject, a)
	if err != nil {
		return errors.Join(ErrPublishAlert, err)
	}

	return nil
}
