package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Load(t *testing.T) {
	t.Run("default load", func(t *testing.T) {
		// given
		expectedConfig := getDefaultAlertsConfig()

		// when
		actualConfig, err := Load()
		require.NoError(t, err, "error loading config")

		// then
		assert.Equal(t, expectedConfig, actualConfig)
		assert.Equal(t, "localhost", actualConfig.RabbitMQ.Host)
		assert.Equal(t, "log_events_q", actualConfig.RabbitMQ.Queue)
	})

	t.Run("partial file override", func(t *testing.T) {
		// given
		expectedConfig := getDefaultAlertsConfig()

		// when
		actualConfig, err := Load("./test_files/")
		require.NoError(t, err, "error loading config")

		// then
		// verify not overridden default values
		assert.Equal(t, expectedConfig.RabbitMQ.Port, actualConfig.RabbitMQ.Port)
		assert.Equal(t, expectedConfig.RabbitMQ.User, actualConfig.RabbitMQ.User)
		assert.Equal(t, expectedConfig.Alerts.AddressPrefix, actualConfig.Alerts.AddressPrefix)
		assert.Equal(t, expectedConfig.Alerts.Nats.Subject, actualConfig.Alerts.Nats.Subject)
		assert.Equal(t, expectedConfig.Cache.Redis.DB, actualConfig.Cache.Redis.DB)

		// verify correct override
		assert.Equal(t, "DEBUG", actualConfig.LogLevel)
		assert.Equal(t, "json", actualConfig.LogFormat)
		assert.Equal(t, "rabbitmq.local", actualConfig.RabbitMQ.Host)
		assert.Equal(t, "all_events_q", actualConfig.RabbitMQ.Queue)
		assert.Equal(t, "all_events", actualConfig.RabbitMQ.Exchange)
		assert.Equal(t, 30*time.Second, actualConfig.RabbitMQ.Heartbeat)
		assert.Equal(t, []string{"ChangeOwnerAddress", "upgradeContract"}, actualConfig.Alerts.Identifiers)
		assert.True(t, actualConfig.Alerts.Nats.Enabled)
		assert.Equal(t, "nats://nats:4222", actualConfig.Alerts.Nats.URL)
		assert.Equal(t, Redis, actualConfig.Cache.Engine)
		assert.Equal(t, "redis:6379", actualConfig.Cache.Redis.Addr)
	})

	t.Run("env override", func(t *testing.T) {
		// given
		t.Setenv("ALERTS_RABBITMQ_HOST", "broker")
		t.Setenv("ALERTS_RABBITMQ_QUEUE", "txs_q")

		// when
		actualConfig, err := Load()
		require.NoError(t, err)

		// then
		assert.Equal(t, "broker", actualConfig.RabbitMQ.Host)
		assert.Equal(t, "txs_q", actualConfig.RabbitMQ.Queue)
	})

	t.Run("path does not exist", func(t *testing.T) {
		// when
		_, err := Load("./does_not_exist/")

		// then
		require.ErrorIs(t, err, ErrConfigPath)
	})

	t.Run("path is a file", func(t *testing.T) {
		// when
		_, err := Load("./test_files/config.yaml")

		// then
		require.ErrorIs(t, err, ErrConfigPath)
	})

	t.Run("invalid config", func(t *testing.T) {
		// given
		t.Setenv("ALERTS_RABBITMQ_PORT", "0")

		// when
		_, err := Load()

		// then
		require.ErrorIs(t, err, ErrConfigInvalid)
	})
}

func TestDumpConfig(t *testing.T) {
	// given
	dir := t.TempDir()
	expectedConfig, err := Load("./test_files/")
	require.NoError(t, err)

	// when
	err = expectedConfig.DumpConfig(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)

	// then
	_, err = os.Stat(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)

	actualConfig, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, expectedConfig, actualConfig)
}

func TestExampleConfig(t *testing.T) {
	// given
	dir := t.TempDir()
	example, err := os.ReadFile("example_config.yaml")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), example, 0o600))

	expectedConfig := getDefaultAlertsConfig()
	expectedConfig.Prometheus.Endpoint = "/metrics"
	expectedConfig.Prometheus.Addr = ":2112"

	// when
	actualConfig, err := Load(dir)

	// then
	require.NoError(t, err)
	assert.Equal(t, expectedConfig, actualConfig)
}
