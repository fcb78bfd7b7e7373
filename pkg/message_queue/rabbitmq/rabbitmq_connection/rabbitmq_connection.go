package rabbitmq_connection

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"strconv"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

var ErrRabbitMQConnectionFailed = fmt.Errorf("failed to connect to RabbitMQ server")

// URL builds an amqp URI. An empty vhost or "/" selects the default vhost.
func URL(host string, port int, user, password, vhost string) string {
	u := url.URL{
		Scheme: "amqp",
		Host:   net.JoinHostPort(host, strconv.Itoa(port)),
		Path:   "/",
	}

	if user != "" {
		u.User = url.UserPassword(user, password)
	}

	if vhost != "" && vhost != "/" {
		u.Path = "/" + vhost
		u.RawPath = "/" + url.PathEscape(vhost)
	}

	return u.String()
}

func WithHeartbeat(heartbeat time.Duration) func(config *rabbitConfig) {
	return func(config *rabbitConfig) {
		config.heartbeat = heartbeat
	}
}

func WithConnectionName(name string) func(config *rabbitConfig) {
	return func(config *rabbitConfig) {
		config.connectionName = name
	}
}

func WithLocale(locale string) func(config *rabbitConfig) {
	return func(config *rabbitConfig) {
		config.locale = locale
	}
}

func WithClientClosedChannel(clientClosedCh chan struct{}) func(config *rabbitConfig) {
	return func(config *rabbitConfig) {
		config.clientClosedCh = clientClosedCh
	}
}

type rabbitConfig struct {
	heartbeat      time.Duration
	connectionName string
	locale         string
	clientClosedCh chan struct{}
}

type Option func(config *rabbitConfig)

func New(amqpURL string, logger *slog.Logger, opts ...Option) (*amqp.Connection, error) {
	logger = logger.With(slog.String("module", "rabbitmq"))

	cfg := &rabbitConfig{
		heartbeat:      10 * time.Second,
		connectionName: "notifier-alerts",
		locale:         "en_US",
		clientClosedCh: nil,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	conn, err := amqp.DialConfig(amqpURL, amqp.Config{
		Properties: amqp.Table{"connection_name": cfg.connectionName},
		Heartbeat:  cfg.heartbeat,
		Locale:     cfg.locale,
	})
	if err != nil {
		return nil, errors.Join(ErrRabbitMQConnectionFailed, err)
	}

	notifyClose := conn.NotifyClose(make(chan *amqp.Error, 1))
	go func() {
		amqpErr, ok := <-notifyClose
		if ok && amqpErr != nil {
			logger.Error("client disconnected", slog.String("err", amqpErr.Error()), slog.Int("code", amqpErr.Code))
		} else {
			logger.Warn("client closed")
		}

		if cfg.clientClosedCh != nil {
			select {
			case cfg.clientClosedCh <- struct{}{}:
			default:
			}
		}
	}()

	logger.Info("client connected", slog.String("connection", cfg.connectionName))

	return conn, nil
}
