package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const envPrefix = "ALERTS"

var (
	ErrConfigFailedToSetDefaults = errors.New("error occurred while setting defaults")
	ErrConfigPath                = errors.New("config path error")
	ErrConfigInvalid             = errors.New("invalid config")
)

// Load builds the configuration from defaults, an optional config.yaml in one
// of the given directories and ALERTS_ prefixed environment variables, in
// increasing order of precedence.
func Load(configFileDirs ...string) (*AlertsConfig, error) {
	alertsConfig := getDefaultAlertsConfig()

	v := viper.New()

	err := setDefaults(v, "", alertsConfig)
	if err != nil {
		return nil, err
	}

	err = overrideWithFiles(v, configFileDirs...)
	if err != nil {
		return nil, err
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	err = v.Unmarshal(alertsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	err = alertsConfig.Validate()
	if err != nil {
		return nil, err
	}

	return alertsConfig, nil
}

// setDefaults registers every leaf of the default config as a viper default so
// that nested keys can be overridden from the environment.
func setDefaults(v *viper.Viper, prefix string, defaultConfig any) error {
	defaultsMap := make(map[string]interface{})

	if err := mapstructure.Decode(defaultConfig, &defaultsMap); err != nil {
		err = errors.Join(ErrConfigFailedToSetDefaults, err)
		return err
	}

	for key, value := range defaultsMap {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		if isStruct(value) {
			err := setDefaults(v, fullKey, value)
			if err != nil {
				return err
			}
			continue
		}

		v.SetDefault(fullKey, value)
	}

	return nil
}

func isStruct(value any) bool {
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}

	return rv.Kind() == reflect.Struct
}

func overrideWithFiles(v *viper.Viper, configFileDirs ...string) error {
	if len(configFileDirs) == 0 || configFileDirs[0] == "" {
		return nil
	}

	for _, path := range configFileDirs {
		stat, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				return errors.Join(ErrConfigPath, fmt.Errorf("path: %s does not exist", path))
			}
			return err
		}
		if !stat.IsDir() {
			return errors.Join(ErrConfigPath, fmt.Errorf("path: %s should be a directory", path))
		}

		v.AddConfigPath(path)
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	err := v.ReadInConfig()
	if err != nil {
		return err
	}

	return nil
}
