package watcher

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

type stats struct {
	messagesReceived prometheus.Counter
	alerts           prometheus.Counter
	decodeFailures   prometheus.Counter
	duplicateAlerts  prometheus.Counter
	publishFailures  prometheus.Counter
}

func newStats() *stats {
	return &stats{
		messagesReceived: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "notifier_alerts_messages_received_total",
			Help: "Number of messages received from the queue",
		}),
		alerts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "notifier_alerts_alerts_total",
			Help: "Number of alerts emitted",
		}),
		decodeFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "notifier_alerts_decode_failures_total",
			Help: "Number of messages which could not be decoded as block data",
		}),
		duplicateAlerts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "notifier_alerts_duplicate_alerts_total",
			Help: "Number of alerts suppressed because they were already emitted",
		}),
		publishFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "notifier_alerts_publish_failures_total",
			Help: "Number of failed alert publications",
		}),
	}
}

func (s *stats) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		s.messagesReceived,
		s.alerts,
		s.decodeFailures,
		s.duplicateAlerts,
		s.publishFailures,
	}
}

// registerStats registers all collectors or none of them.
func registerStats(cs ...prometheus.Collector) error {
	for i, c := range cs {
		err := prometheus.Register(c)
		if err != nil {
			unregisterStats(cs[:i]...)
			return fmt.Errorf("failed to register stats collector: %w", err)
		}
	}

	return nil
}

func unregisterStats(cs ...prometheus.Collector) {
	for _, c := range cs {
		_ = prometheus.Unregister(c)
	}
}
