package rabbitmq_consumer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

var (
	ErrEmptyQueueName          = errors.New("queue name is empty")
	ErrFailedToOpenChannel     = errors.New("failed to open channel")
	ErrFailedToDeclareExchange = errors.New("failed to declare exchange")
	ErrFailedToDeclareQueue    = errors.New("failed to declare queue")
	ErrFailedToBindQueue       = errors.New("failed to bind queue")
	ErrFailedToConsume         = errors.New("failed to consume")
)

// AMQPChannel is the subset of *amqp.Channel used by the client.
type AMQPChannel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	QueueBind(name, key, exchange string, noWait bool, args amqp.Table) error
	ConsumeWithContext(ctx context.Context, queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	Cancel(consumer string, noWait bool) error
	Close() error
}

type Client struct {
	ch     AMQPChannel
	conn   io.Closer
	logger *slog.Logger

	exchange    string
	consumerTag string

	mu        sync.Mutex
	consuming bool
}

// WithExchangeBinding declares the given fanout exchange and binds the
// consumed queue to it. Without it the queue has to exist already.
func WithExchangeBinding(exchange string) func(*Client) {
	return func(c *Client) {
		c.exchange = exchange
	}
}

func WithConsumerTag(tag string) func(*Client) {
	return func(c *Client) {
		if tag != "" {
			c.consumerTag = tag
		}
	}
}

type Option func(c *Client)

func New(conn *amqp.Connection, logger *slog.Logger, opts ...Option) (*Client, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, errors.Join(ErrFailedToOpenChannel, err)
	}

	return NewWithChannel(ch, conn, logger, opts...), nil
}

func NewWithChannel(ch AMQPChannel, conn io.Closer, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		ch:          ch,
		conn:        conn,
		logger:      logger.With(slog.String("module", "rabbitmq-consumer")),
		consumerTag: "notifier-alerts-" + uuid.NewString(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) ConsumerTag() string {
	return c.consumerTag
}

// Consume registers an auto-acknowledging consumer on the queue. Deliveries
// are received from the returned channel, which is closed when the consumer
// is cancelled or the channel or connection goes away.
func (c *Client) Consume(ctx context.Context, queue string) (<-chan amqp.Delivery, error) {
	if queue == "" {
		return nil, ErrEmptyQueueName
	}

	if c.exchange != "" {
		err := c.bind(queue)
		if err != nil {
			return nil, err
		}
	}

	deliveries, err := c.ch.ConsumeWithContext(ctx,
		queue,
		c.consumerTag,
		true,  // autoAck
		false, // exclusive
		false, // noLocal
		false, // noWait
		nil,
	)
	if err != nil {
		return nil, errors.Join(ErrFailedToConsume, fmt.Errorf("queue: %s", queue), err)
	}

	c.mu.Lock()
	c.consuming = true
	c.mu.Unlock()

	c.logger.Info("consumer registered", slog.String("queue", queue), slog.String("consumer", c.consumerTag))

	return deliveries, nil
}

func (c *Client) bind(queue string) error {
	err := c.ch.ExchangeDeclare(c.exchange, amqp.ExchangeFanout, true, false, false, false, nil)
	if err != nil {
		return errors.Join(ErrFailedToDeclareExchange, fmt.Errorf("exchange: %s", c.exchange), err)
	}

	_, err = c.ch.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return errors.Join(ErrFailedToDeclareQueue, fmt.Errorf("queue: %s", queue), err)
	}

	err = c.ch.QueueBind(queue, "", c.exchange, false, nil)
	if err != nil {
		return errors.Join(ErrFailedToBindQueue, fmt.Errorf("queue: %s, exchange: %s", queue, c.exchange), err)
	}

	c.logger.Info("queue bound", slog.String("queue", queue), slog.String("exchange", c.exchange))

	return nil
}

func (c *Client) Shutdown() {
	c.mu.Lock()
	consuming := c.consuming
	c.consuming = false
	c.mu.Unlock()

	if consuming {
		err := c.ch.Cancel(c.consumerTag, false)
		if err != nil && !errors.Is(err, amqp.ErrClosed) {
			c.logger.Error("failed to cancel consumer", slog.String("err", err.Error()))
		}
	}

	err := c.ch.Close()
	if err != nil && !errors.Is(err, amqp.ErrClosed) {
		c.logger.Error("failed to close channel", slog.String("err", err.Error()))
	}

	if c.conn != nil {
		err = c.conn.Close()
		if err != nil && !errors.Is(err, amqp.ErrClosed) {
			c.logger.Error("failed to close connection", slog.String("err", err.Error()))
		}
	}
}
