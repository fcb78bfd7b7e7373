package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

func (c *AlertsConfig) Validate() error {
	if c.RabbitMQ == nil {
		return errors.Join(ErrConfigInvalid, errors.New("rabbitmq config is required"))
	}
	if c.RabbitMQ.Host == "" {
		return errors.Join(ErrConfigInvalid, errors.New("rabbitmq host is required"))
	}
	if c.RabbitMQ.Queue == "" {
		return errors.Join(ErrConfigInvalid, errors.New("rabbitmq queue is required"))
	}
	if c.RabbitMQ.Port <= 0 || c.RabbitMQ.Port > 65535 {
		return errors.Join(ErrConfigInvalid, fmt.Errorf("rabbitmq port out of range: %d", c.RabbitMQ.Port))
	}

	if c.Alerts == nil || len(c.Alerts.Identifiers) == 0 {
		return errors.Join(ErrConfigInvalid, errors.New("at least one alert identifier is required"))
	}

	if c.Alerts.Nats != nil && c.Alerts.Nats.Enabled {
		if c.Alerts.Nats.URL == "" || c.Alerts.Nats.Subject == "" {
			return errors.Join(ErrConfigInvalid, errors.New("nats url and subject are required when forwarding is enabled"))
		}
	}

	if c.Alerts.Dedup != nil && c.Alerts.Dedup.Enabled && c.Cache == nil {
		return errors.Join(ErrConfigInvalid, errors.New("cache config is required when dedup is enabled"))
	}

	return nil
}

// DumpConfig writes the effective configuration as yaml.
func (c *AlertsConfig) DumpConfig(filename string) error {
	out := map[string]any{}
	err := decodeNested(c, out)
	if err != nil {
		return fmt.Errorf("failed to decode config: %w", err)
	}

	data, err := yaml.Marshal(out)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(filename, data, 0o600)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func decodeNested(in any, out map[string]any) error {
	flat := map[string]any{}
	err := mapstructure.Decode(in, &flat)
	if err != nil {
		return err
	}

	for key, value := range flat {
		if d, ok := value.(time.Duration); ok {
			out[key] = d.String()
			continue
		}

		if isStruct(value) {
			nested := map[string]any{}
			err = decodeNested(value, nested)
			if err != nil {
				return err
			}
			out[key] = nested
			continue
		}

		out[key] = value
	}

	return nil
}
