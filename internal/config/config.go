// Package config loads airscout settings from file and environment and
// builds the logger they describe.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/HerbHall/airscout/internal/scan"
)

// Load reads configuration from an optional config file and AIRSCOUT_*
// environment variables. An empty configPath searches the working directory
// and /etc/airscout for airscout.yaml; a missing file is fine, defaults
// apply.
func Load(configPath string) (*viper.Viper, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("scan.interface", "")
	v.SetDefault("scan.timeout", "30s")
	v.SetDefault("scan.allow_empty", false)

	v.SetEnvPrefix("AIRSCOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", configPath, err)
		}
		return v, nil
	}

	v.SetConfigName("airscout")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/airscout")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return v, nil
}

// ScanConfig extracts the scan layer configuration.
func ScanConfig(v *viper.Viper) (scan.Config, error) {
	cfg := scan.DefaultConfig()
	if sub := v.Sub("scan"); sub != nil {
		if err := sub.Unmarshal(&cfg); err != nil {
			return scan.Config{}, fmt.Errorf("decode scan config: %w", err)
		}
	}
	return cfg, nil
}
