package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envPrefix is the prefix for all environment variables read by the service,
// e.g. APARTMENTS_DATABASE_URI.
const envPrefix = "APARTMENTS"

// Load reads configuration from an optional config.yaml in the working
// directory and from environment variables. Environment variables take
// precedence over values from the config file.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.request_timeout_seconds", 30)
	v.SetDefault("database.name", "array_apartments")

	// Read from a config file when one is present
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Configure environment variables
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind the environment variables viper cannot discover
	// without a config file entry
	bindEnvs := []struct {
		key    string
		envVar string
	}{
		{"server.port", "APARTMENTS_SERVER_PORT"},
		{"server.log_level", "APARTMENTS_SERVER_LOG_LEVEL"},
		{"server.request_timeout_seconds", "APARTMENTS_SERVER_REQUEST_TIMEOUT_SECONDS"},
		{"database.uri", "APARTMENTS_DATABASE_URI"},
		{"database.name", "APARTMENTS_DATABASE_NAME"},
		{"auth.jwt_secret", "APARTMENTS_AUTH_JWT_SECRET"},
	}
	for _, env := range bindEnvs {
		if err := v.BindEnv(env.key, env.envVar); err != nil {
			return nil, fmt.Errorf("error binding environment variable %s: %w", env.envVar, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
