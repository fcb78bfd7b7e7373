package mq_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mx-watch/notifier-alerts/config"
	"github.com/mx-watch/notifier-alerts/internal/mq"
)

func TestNewConsumerClient(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	t.Run("missing config", func(t *testing.T) {
		// when
		client, err := mq.NewConsumerClient(logger, nil, nil)

		// then
		require.ErrorIs(t, err, mq.ErrConfigMissing)
		require.Nil(t, client)
	})

	t.Run("broker unreachable", func(t *testing.T) {
		// given
		cfg := &config.RabbitMQConfig{
			Host:      "127.0.0.1",
			Port:      1,
			User:      "guest",
			Password:  "guest",
			Queue:     "log_events_q",
			Heartbeat: time.Second,
		}

		// when
		client, err := mq.NewConsumerClient(logger, cfg, nil)

		// then
		require.ErrorContains(t, err, "failed to establish connection to message queue at 127.0.0.1:1")
		require.Nil(t, client)
	})
}

func TestNewPublisherClient(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	t.Run("missing config", func(t *testing.T) {
		// when
		client, err := mq.NewPublisherClient(logger, nil, nil)

		// then
		require.ErrorIs(t, err, mq.ErrConfigMissing)
		require.Nil(t, client)
	})

	t.Run("server unreachable", func(t *testing.T) {
		// given
		cfg := &config.NatsConfig{
			Enabled: true,
			URL:     "nats://127.0.0.1:1",
			Subject: "notifier-alerts",
		}

		// when
		client, err := mq.NewPublisherClient(logger, cfg, nil)

		// then
		require.ErrorContains(t, err, "failed to establish connection to message queue at URL nats://127.0.0.1:1")
		require.Nil(t, client)
	})
}
