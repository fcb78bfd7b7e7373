package nats_connection

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

var ErrNatsConnectionFailed = fmt.Errorf("failed to connect to NATS server")

func WithMaxReconnects(maxReconnects int) func(config *natsConfig) {
	return func(config *natsConfig) {
		config.maxReconnects = maxReconnects
	}
}

func WithReconnectWait(reconnectWait time.Duration) func(config *natsConfig) {
	return func(config *natsConfig) {
		config.reconnectWait = reconnectWait
	}
}

func WithClientClosedChannel(clientClosedCh chan struct{}) func(config *natsConfig) {
	return func(config *natsConfig) {
		config.clientClosedCh = clientClosedCh
	}
}

func WithName(name string) func(config *natsConfig) {
	return func(config *natsConfig) {
		config.name = name
	}
}

type natsConfig struct {
	name                 string
	maxReconnects        int
	reconnectWait        time.Duration
	pingInterval         time.Duration
	retryOnFailedConnect bool
	clientClosedCh       chan struct{}
}

type Option func(config *natsConfig)

// New connects to the NATS server used for forwarding alerts.
func New(natsURL string, logger *slog.Logger, opts ...Option) (*nats.Conn, error) {
	logger = logger.With(slog.String("module", "nats"))

	cfg := &natsConfig{
		name:                 "notifier-alerts",
		maxReconnects:        10,
		reconnectWait:        2 * time.Second,
		pingInterval:         15 * time.Second,
		retryOnFailedConnect: false,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	natsOpts := []nats.Option{
		nats.Name(cfg.name),
		nats.ErrorHandler(func(_ *nats.Conn, _ *nats.Subscription, err error) {
			if err != nil {
				logger.Error("connection error", slog.String("err", err.Error()))
			}
		}),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			var args []any
			if err != nil {
				args = append(args, slog.String("err", err.Error()))
			}
			buffered, bufferedErr := nc.Buffered()
			if bufferedErr == nil {
				args = append(args, slog.Int("buffered", buffered))
			}

			logger.Error("client disconnected", args...)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("client reconnected", slog.String("url", nc.ConnectedUrlRedacted()))
		}),
		nats.ClosedHandler(func(_ *nats.Conn) {
			logger.Warn("client closed")
			if cfg.clientClosedCh != nil {
				select {
				case cfg.clientClosedCh <- struct{}{}:
				default:
				}
			}
		}),
		nats.RetryOnFailedConnect(cfg.retryOnFailedConnect),
		nats.PingInterval(cfg.pingInterval),
		nats.MaxReconnects(cfg.maxReconnects),
		nats.ReconnectWait(cfg.reconnectWait),
	}

	nc, err := nats.Connect(natsURL, natsOpts...)
	if err != nil {
		return nil, errors.Join(ErrNatsConnectionFailed, err)
	}

	return nc, nil
}
