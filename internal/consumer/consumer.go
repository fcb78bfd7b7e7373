package consumer

import (
	"context"
	"errors"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

var (
	ErrDeliveryChannelClosed = errors.New("delivery channel closed")
	ErrConsume               = errors.New("failed to start consuming")
)

// DeliveryClient registers a consumer on a queue.
type DeliveryClient interface {
	Consume(ctx context.Context, queue string) (<-chan amqp.Delivery, error)
}

// MessageHandler processes the body of a single delivery. Returned errors are
// logged and do not stop the loop.
type MessageHandler interface {
	Handle(ctx context.Context, body []byte) error
}

type Consumer struct {
	client         DeliveryClient
	handler        MessageHandler
	logger         *slog.Logger
	handlerTimeout time.Duration
}

// WithHandlerTimeout bounds the time a single message may be handled.
func WithHandlerTimeout(d time.Duration) func(*Consumer) {
	return func(c *Consumer) {
		c.handlerTimeout = d
	}
}

type Option func(c *Consumer)

func New(client DeliveryClient, handler MessageHandler, logger *slog.Logger, opts ...Option) *Consumer {
	c := &Consumer{
		client:  client,
		handler: handler,
		logger:  logger.With(slog.String("module", "consumer")),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Run reads deliveries of the queue one at a time and hands each body to the
// handler before reading the next one. It returns nil once ctx is done and
// ErrDeliveryChannelClosed if the broker closes the delivery channel.
func (c *Consumer) Run(ctx context.Context, queue string) error {
	deliveries, err := c.client.Consume(ctx, queue)
	if err != nil {
		return errors.Join(ErrConsume, err)
	}

	c.logger.Info(" [*] Waiting for messages. To exit press CTRL+C", slog.String("queue", queue))

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return ErrDeliveryChannelClosed
			}

			c.handle(ctx, d.Body)
		}
	}
}

func (c *Consumer) handle(ctx context.Context, body []byte) {
	if c.handlerTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.handlerTimeout)
		defer cancel()
	}

	err := c.handler.Handle(ctx, body)
	if err != nil {
		c.logger.Error("failed to handle message", slog.String("err", err.Error()))
	}
}
