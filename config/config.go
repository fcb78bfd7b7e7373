package config

import (
	"time"
)

const (
	InMemory  = "in-memory"
	FreeCache = "freecache"
	Redis     = "redis"
)

type AlertsConfig struct {
	LogLevel     string            `json:"logLevel" mapstructure:"logLevel"`
	LogFormat    string            `json:"logFormat" mapstructure:"logFormat"`
	ProfilerAddr string            `json:"profilerAddr" mapstructure:"profilerAddr"`
	Prometheus   *PrometheusConfig `json:"prometheus" mapstructure:"prometheus"`
	RabbitMQ     *RabbitMQConfig   `json:"rabbitmq" mapstructure:"rabbitmq"`
	Alerts       *AlertConfig      `json:"alerts" mapstructure:"alerts"`
	Cache        *CacheConfig      `json:"cache" mapstructure:"cache"`
}

type PrometheusConfig struct {
	Endpoint string `json:"endpoint" mapstructure:"endpoint"`
	Addr     string `json:"addr" mapstructure:"addr"`
}

func (p *PrometheusConfig) IsEnabled() bool {
	return p != nil && p.Endpoint != "" && p.Addr != ""
}

// RabbitMQConfig holds the broker connection and the queue subscription.
type RabbitMQConfig struct {
	Host           string        `json:"host" mapstructure:"host"`
	Port           int           `json:"port" mapstructure:"port"`
	User           string        `json:"user" mapstructure:"user"`
	Password       string        `json:"password" mapstructure:"password"`
	VHost          string        `json:"vhost" mapstructure:"vhost"`
	Queue          string        `json:"queue" mapstructure:"queue"`
	Exchange       string        `json:"exchange" mapstructure:"exchange"`
	ConnectionName string        `json:"connectionName" mapstructure:"connectionName"`
	ConsumerTag    string        `json:"consumerTag" mapstructure:"consumerTag"`
	Heartbeat      time.Duration `json:"heartbeat" mapstructure:"heartbeat"`
}

type AlertConfig struct {
	Identifiers   []string     `json:"identifiers" mapstructure:"identifiers"`
	AddressPrefix string       `json:"addressPrefix" mapstructure:"addressPrefix"`
	Dedup         *DedupConfig `json:"dedup" mapstructure:"dedup"`
	Nats          *NatsConfig  `json:"nats" mapstructure:"nats"`
}

type DedupConfig struct {
	Enabled bool          `json:"enabled" mapstructure:"enabled"`
	TTL     time.Duration `json:"ttl" mapstructure:"ttl"`
}

type NatsConfig struct {
	Enabled       bool          `json:"enabled" mapstructure:"enabled"`
	URL           string        `json:"url" mapstructure:"url"`
	Subject       string        `json:"subject" mapstructure:"subject"`
	MaxReconnects int           `json:"maxReconnects" mapstructure:"maxReconnects"`
	ReconnectWait time.Duration `json:"reconnectWait" mapstructure:"reconnectWait"`
}

type CacheConfig struct {
	Engine    string           `json:"engine" mapstructure:"engine"`
	Freecache *FreeCacheConfig `json:"freecache" mapstructure:"freecache"`
	Redis     *RedisConfig     `json:"redis" mapstructure:"redis"`
}

type FreeCacheConfig struct {
	Size int `json:"size" mapstructure:"size"`
}

type RedisConfig struct {
	Addr     string `json:"addr" mapstructure:"addr"`
	Password string `json:"password" mapstructure:"password"`
	DB       int    `json:"db" mapstructure:"db"`
}
