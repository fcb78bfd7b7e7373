package mq

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/mx-watch/notifier-alerts/config"
	"github.com/mx-watch/notifier-alerts/pkg/message_queue/nats/client/nats_core"
	"github.com/mx-watch/notifier-alerts/pkg/message_queue/nats/nats_connection"
	"github.com/mx-watch/notifier-alerts/pkg/message_queue/rabbitmq/client/rabbitmq_consumer"
	"github.com/mx-watch/notifier-alerts/pkg/message_queue/rabbitmq/rabbitmq_connection"
)

var ErrConfigMissing = errors.New("message queue config is required")

// ConsumerClient delivers the messages of a queue.
type ConsumerClient interface {
	Consume(ctx context.Context, queue string) (<-chan amqp.Delivery, error)
	Shutdown()
}

// PublisherClient forwards messages to a subject.
type PublisherClient interface {
	Publish(ctx context.Context, subject string, data []byte) error
	PublishJSON(ctx context.Context, subject string, v any) error
	Shutdown()
}

// NewConsumerClient connects to RabbitMQ and opens a consumer channel. The
// connection is dialed once. clientClosedCh is signalled when the broker
// connection goes away.
func NewConsumerClient(logger *slog.Logger, rabbitCfg *config.RabbitMQConfig, clientClosedCh chan struct{}) (ConsumerClient, error) {
	if rabbitCfg == nil {
		return nil, ErrConfigMissing
	}

	logger = logger.With(slog.String("module", "message-queue"))

	amqpURL := rabbitmq_connection.URL(rabbitCfg.Host, rabbitCfg.Port, rabbitCfg.User, rabbitCfg.Password, rabbitCfg.VHost)

	connOpts := []rabbitmq_connection.Option{
		rabbitmq_connection.WithConnectionName(rabbitCfg.ConnectionName),
		rabbitmq_connection.WithClientClosedChannel(clientClosedCh),
	}
	if rabbitCfg.Heartbeat > 0 {
		connOpts = append(connOpts, rabbitmq_connection.WithHeartbeat(rabbitCfg.Heartbeat))
	}

	conn, err := rabbitmq_connection.New(amqpURL, logger, connOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to establish connection to message queue at %s:%d: %v", rabbitCfg.Host, rabbitCfg.Port, err)
	}

	consumerOpts := []rabbitmq_consumer.Option{
		rabbitmq_consumer.WithConsumerTag(rabbitCfg.ConsumerTag),
	}
	if rabbitCfg.Exchange != "" {
		consumerOpts = append(consumerOpts, rabbitmq_consumer.WithExchangeBinding(rabbitCfg.Exchange))
	}

	client, err := rabbitmq_consumer.New(conn, logger, consumerOpts...)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to create rabbitmq consumer: %v", err)
	}

	return client, nil
}

// NewPublisherClient connects to NATS for alert forwarding.
func NewPublisherClient(logger *slog.Logger, natsCfg *config.NatsConfig, clientClosedCh chan struct{}) (PublisherClient, error) {
	if natsCfg == nil {
		return nil, ErrConfigMissing
	}

	logger = logger.With(slog.String("module", "message-queue"))

	connOpts := []nats_connection.Option{
		nats_connection.WithName("notifier-alerts"),
		nats_connection.WithMaxReconnects(natsCfg.MaxReconnects),
		nats_connection.WithReconnectWait(natsCfg.ReconnectWait),
		nats_connection.WithClientClosedChannel(clientClosedCh),
	}

	conn, err := nats_connection.New(natsCfg.URL, logger, connOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to establish connection to message queue at URL %s: %v", natsCfg.URL, err)
	}

	return nats_core.New(conn, nats_core.WithLogger(logger)), nil
}
