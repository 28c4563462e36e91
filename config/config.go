// Package config loads client configuration from the environment or an
// optional yaml file, with a WOOCOMMERCE_ prefix on environment variables
// (WOOCOMMERCE_BASE_URL, WOOCOMMERCE_CONSUMER_KEY, ...).
package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	ierr "github.com/storekit/woocommerce-go/errors"
	"github.com/storekit/woocommerce-go/validator"
)

// Configuration holds the construction inputs for a client.
type Configuration struct {
	BaseURL         string `mapstructure:"base_url" validate:"required,url"`
	ConsumerKey     string `mapstructure:"consumer_key" validate:"required"`
	ConsumerSecret  string `mapstructure:"consumer_secret" validate:"required"`
	QueryStringAuth bool   `mapstructure:"query_string_auth"`
	LogLevel        string `mapstructure:"log_level"`
}

// Load reads configuration from a local .env (if present), a woocommerce.yaml
// file on the search path, and WOOCOMMERCE_-prefixed environment variables,
// in increasing precedence. Missing required fields fail validation.
func Load() (*Configuration, error) {
	// .env is a developer convenience; absence is not an error.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("woocommerce")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("WOOCOMMERCE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// Bind explicitly so env vars resolve even without a config file.
	for _, key := range []string{"base_url", "consumer_key", "consumer_secret", "query_string_auth", "log_level"} {
		_ = v.BindEnv(key)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, ierr.WithError(err).
				WithHint("The woocommerce.yaml config file could not be read").
				Mark(ierr.ErrConfiguration)
		}
	}

	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Configuration could not be decoded").
			Mark(ierr.ErrConfiguration)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks required fields.
func (c *Configuration) Validate() error {
	if err := validator.ValidateStruct(c); err != nil {
		return ierr.WithError(err).
			WithHint("Base URL, consumer key and consumer secret are required").
			Mark(ierr.ErrConfiguration)
	}
	return nil
}
