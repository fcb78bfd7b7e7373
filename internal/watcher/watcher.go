package watcher

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/mx-watch/notifier-alerts/internal/alert"
	"github.com/mx-watch/notifier-alerts/internal/cache"
)

const dedupKeyPrefix = "alert_"

var ErrFailedToRegisterStats = errors.New("failed to register stats")

// Watcher handles queue messages: it logs each body, extracts alerts from
// block payloads and emits every alert not seen before to its publishers.
type Watcher struct {
	logger     *slog.Logger
	extractor  *alert.Extractor
	store      cache.Store
	dedupTTL   time.Duration
	publishers []Publisher
	stats      *stats
}

// WithDeduplication suppresses alerts already emitted within ttl.
func WithDeduplication(store cache.Store, ttl time.Duration) func(*Watcher) {
	return func(w *Watcher) {
		w.store = store
		w.dedupTTL = ttl
	}
}

func WithPublishers(publishers ...Publisher) func(*Watcher) {
	return func(w *Watcher) {
		w.publishers = append(w.publishers, publishers...)
	}
}

type Option func(w *Watcher)

func New(logger *slog.Logger, extractor *alert.Extractor, opts ...Option) (*Watcher, error) {
	w := &Watcher{
		logger:    logger.With(slog.String("module", "watcher")),
		extractor: extractor,
		stats:     newStats(),
	}

	for _, opt := range opts {
		opt(w)
	}

	if len(w.publishers) == 0 {
		w.publishers = []Publisher{NewLogPublisher(logger)}
	}

	err := registerStats(w.stats.collectors()...)
	if err != nil {
		return nil, errors.Join(ErrFailedToRegisterStats, err)
	}

	return w, nil
}

// Handle never fails: undecodable messages and publish errors are logged and
// counted.
func (w *Watcher) Handle(ctx context.Context, body []byte) error {
	w.stats.messagesReceived.Inc()
	w.logger.Info(" [x] Received", slog.String("body", string(body)))

	alerts, err := w.extractor.ExtractFromJSON(body)
	if err != nil {
		w.stats.decodeFailures.Inc()
		w.logger.Debug("message is not block data", slog.String("err", err.Error()))
		return nil
	}

	for _, a := range alerts {
		if w.isDuplicate(a) {
			w.stats.duplicateAlerts.Inc()
			w.logger.Debug("duplicate alert", slog.String("hash", a.TxHash), slog.String("identifier", a.Identifier))
			continue
		}

		w.markSeen(a)
		if !w.emit(ctx, a) {
			// nothing went out, let a redelivery try again
			w.forget(a)
		}
	}

	return nil
}

// emit reports whether at least one publisher accepted the alert.
func (w *Watcher) emit(ctx context.Context, a alert.Alert) bool {
	w.stats.alerts.Inc()

	published := false
	for _, p := range w.publishers {
		err := p.Publish(ctx, a)
		if err != nil {
			w.stats.publishFailures.Inc()
			w.logger.Error("failed to publish alert", slog.String("hash", a.TxHash), slog.String("err", err.Error()))
			continue
		}
		published = true
	}

	return published
}

func (w *Watcher) isDuplicate(a alert.Alert) bool {
	if w.store == nil {
		return false
	}

	_, err := w.store.Get(dedupKeyPrefix + a.Key())
	if err == nil {
		return true
	}

	if !errors.Is(err, cache.ErrCacheNotFound) {
		w.logger.Error("failed to look up alert", slog.String("hash", a.TxHash), slog.String("err", err.Error()))
	}

	return false
}

func (w *Watcher) markSeen(a alert.Alert) {
	if w.store == nil {
		return
	}

	err := w.store.Set(dedupKeyPrefix+a.Key(), []byte{1}, w.dedupTTL)
	if err != nil {
		w.logger.Error("failed to store alert", slog.String("hash", a.TxHash), slog.String("err", err.Error()))
	}
}

func (w *Watcher) forget(a alert.Alert) {
	if w.store == nil {
		return
	}

	err := w.store.Del(dedupKeyPrefix + a.Key())
	if err != nil {
		w.logger.Error("failed to release alert", slog.String("hash", a.TxHash), slog.String("err", err.Error()))
	}
}

func (w *Watcher) Shutdown() {
	unregisterStats(w.stats.collectors()...)
}
