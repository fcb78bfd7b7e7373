package config

import "time"

const (
	DefaultHost          = "localhost"
	DefaultPort          = 5672
	DefaultQueue         = "log_events_q"
	DefaultIdentifier    = "ChangeOwnerAddress"
	DefaultAddressPrefix = "erd"
)

func getDefaultAlertsConfig() *AlertsConfig {
	return &AlertsConfig{
		LogLevel:     "INFO",
		LogFormat:    "text",
		ProfilerAddr: "",
		Prometheus:   getDefaultPrometheusConfig(),
		RabbitMQ:     getDefaultRabbitMQConfig(),
		Alerts:       getDefaultAlertConfig(),
		Cache:        getDefaultCacheConfig(),
	}
}

func getDefaultPrometheusConfig() *PrometheusConfig {
	return &PrometheusConfig{
		Endpoint: "",
		Addr:     "",
	}
}

func getDefaultRabbitMQConfig() *RabbitMQConfig {
	return &RabbitMQConfig{
		Host:           DefaultHost,
		Port:           DefaultPort,
		User:           "guest",
		Password:       "guest",
		VHost:          "/",
		Queue:          DefaultQueue,
		Exchange:       "",
		ConnectionName: "notifier-alerts",
		ConsumerTag:    "",
		Heartbeat:      10 * time.Second,
	}
}

func getDefaultAlertConfig() *AlertConfig {
	return &AlertConfig{
		Identifiers:   []string{DefaultIdentifier},
		AddressPrefix: DefaultAddressPrefix,
		Dedup: &DedupConfig{
			Enabled: true,
			TTL:     24 * time.Hour,
		},
		Nats: &NatsConfig{
			Enabled:       false,
			URL:           "nats://localhost:4222",
			Subject:       "notifier-alerts",
			MaxReconnects: 10,
			ReconnectWait: 2 * time.Second,
		},
	}
}

func getDefaultCacheConfig() *CacheConfig {
	return &CacheConfig{
		Engine: InMemory,
		Freecache: &FreeCacheConfig{
			Size: 10 * 1024 * 1024, // Default size 10MB
		},
		Redis: &RedisConfig{
			Addr:     "localhost:6379",
			Password: "",
			DB:       1,
		},
	}
}
