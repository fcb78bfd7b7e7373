package watcher

import "github.com/prometheus/client_golang/prometheus/testutil"

type Counts struct {
	MessagesReceived float64
	Alerts           float64
	DecodeFailures   float64
	DuplicateAlerts  float64
	PublishFailures  float64
}

func (w *Watcher) Counts() Counts {
	return Counts{
		MessagesReceived: testutil.ToFloat64(w.stats.messagesReceived),
		Alerts:           testutil.ToFloat64(w.stats.alerts),
		DecodeFailures:   testutil.ToFloat64(w.stats.decodeFailures),
		DuplicateAlerts:  testutil.ToFloat64(w.stats.duplicateAlerts),
		PublishFailures:  testutil.ToFloat64(w.stats.publishFailures),
	}
}
