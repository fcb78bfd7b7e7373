package nats_core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/nats-io/nats.go"
)

var (
	ErrFailedToPublish = errors.New("failed to publish")
	ErrFailedToMarshal = errors.New("failed to marshal message")
)

type NatsConnection interface {
	Publish(subj string, data []byte) error
	Status() nats.Status
	Drain() error
}

type Client struct {
	nc     NatsConnection
	logger *slog.Logger
}

func WithLogger(logger *slog.Logger) func(p *Client) {
	return func(m *Client) {
		m.logger = logger
	}
}

type Option func(p *Client)

func New(nc NatsConnection, opts ...Option) *Client {
	m := &Client{
		nc:     nc,
		logger: slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.logger = m.logger.With(slog.String("module", "nats-core"))

	return m
}

func (c *Client) Status() nats.Status {
	return c.nc.Status()
}

func (c *Client) Shutdown() {
	if c.nc != nil {
		err := c.nc.Drain()
		if err != nil {
			c.logger.Error("failed to drain nats connection", slog.String("err", err.Error()))
		}
	}
}

func (c *Client) Publish(ctx context.Context, subject string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return errors.Join(ErrFailedToPublish, err)
	}

	err := c.nc.Publish(subject, data)
	if err != nil {
		return errors.Join(ErrFailedToPublish, fmt.Errorf("subject: %s", subject), err)
	}

	return nil
}

func (c *Client) PublishJSON(ctx context.Context, subject string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Join(ErrFailedToMarshal, err)
	}

	return c.Publish(ctx, subject, data)
}
