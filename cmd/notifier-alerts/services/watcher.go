package cmd

/* Watcher Service */
/*

This service consumes the block data published by the events notifier and raises alerts on ownership changes.

Key components:
- RabbitMQ consumer: receives the messages of the configured queue with automatic acknowledgement
- consumer loop: hands every message to the watcher, one at a time
- watcher: logs each message, extracts alerts and suppresses alerts already emitted
- publishers: write alerts to the log and optionally forward them to NATS

Graceful Shutdown: the consumer loop is stopped first, then the broker connections are closed.

*/

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mx-watch/notifier-alerts/config"
	"github.com/mx-watch/notifier-alerts/internal/alert"
	"github.com/mx-watch/notifier-alerts/internal/cache"
	"github.com/mx-watch/notifier-alerts/internal/consumer"
	"github.com/mx-watch/notifier-alerts/internal/mq"
	"github.com/mx-watch/notifier-alerts/internal/watcher"
)

func StartWatcher(logger *slog.Logger, alertsConfig *config.AlertsConfig, shutdownCh chan string) (func(), error) {
	logger = logger.With(slog.String("service", "watcher"))
	logger.Info("Starting")

	cfg := alertsConfig.Alerts

	var (
		consumerClient  mq.ConsumerClient
		publisherClient mq.PublisherClient
		w               *watcher.Watcher
		store           cache.Store
		cancel          context.CancelFunc
		wg              sync.WaitGroup
		err             error
	)

	stopFn := func() {
		logger.Info("Shutting down watcher")
		if cancel != nil {
			cancel()
		}
		wg.Wait()
		disposeWatcher(logger, consumerClient, publisherClient, w, store)
		logger.Info("Shutdown watcher complete")
	}

	extractor := alert.NewExtractor(
		alert.WithIdentifiers(cfg.Identifiers...),
		alert.WithAddressPrefix(cfg.AddressPrefix),
	)

	publishers := []watcher.Publisher{watcher.NewLogPublisher(logger)}

	if cfg.Nats != nil && cfg.Nats.Enabled {
		publisherClient, err = mq.NewPublisherClient(logger, cfg.Nats, nil)
		if err != nil {
			stopFn()
			return nil, err
		}

		publishers = append(publishers, watcher.NewNatsPublisher(publisherClient, cfg.Nats.Subject))
	}

	opts := []watcher.Option{watcher.WithPublishers(publishers...)}

	if cfg.Dedup != nil && cfg.Dedup.Enabled {
		store, err = cache.NewCacheStore(context.Background(), alertsConfig.Cache)
		if err != nil {
			stopFn()
			return nil, fmt.Errorf("failed to create cache store: %v", err)
		}

		opts = append(opts, watcher.WithDeduplication(store, cfg.Dedup.TTL))
	}

	w, err = watcher.New(logger, extractor, opts...)
	if err != nil {
		stopFn()
		return nil, err
	}

	consumerClient, err = mq.NewConsumerClient(logger, alertsConfig.RabbitMQ, nil)
	if err != nil {
		stopFn()
		return nil, err
	}

	c := consumer.New(consumerClient, w, logger)

	var ctx context.Context
	ctx, cancel = context.WithCancel(context.Background())

	wg.Add(1)
	go func() {
		defer wg.Done()

		runErr := c.Run(ctx, alertsConfig.RabbitMQ.Queue)
		if runErr == nil {
			return
		}

		logger.Error("consumer stopped", slog.String("err", runErr.Error()))

		reason := runErr.Error()
		if errors.Is(runErr, consumer.ErrDeliveryChannelClosed) {
			reason = "message queue client closed"
		}

		select {
		case shutdownCh <- reason:
		default:
		}
	}()

	return stopFn, nil
}

func disposeWatcher(logger *slog.Logger, consumerClient mq.ConsumerClient, publisherClient mq.PublisherClient, w *watcher.Watcher, store cache.Store) {
	// dispose the dependencies in the correct order:
	// 1. consumerClient - stop receiving messages
	// 2. publisherClient - flush forwarded alerts
	// 3. watcher
	// 4. store

	if consumerClient != nil {
		consumerClient.Shutdown()
	}
	if publisherClient != nil {
		publisherClient.Shutdown()
	}
	if w != nil {
		w.Shutdown()
	}

	if closer, ok := store.(interface{ Close() error }); ok {
		err := closer.Close()
		if err != nil {
			logger.Error("failed to close cache store", slog.String("err", err.Error()))
		}
	}
}
