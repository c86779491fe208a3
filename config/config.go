package config

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const DefaultBaseAPIURL = "https://api.openweathermap.org/data/2.5/weather"

type Config struct {
	APIKey     string
	LogLevel   string
	BaseAPIURL string

	HTTPTimeout int32
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("LOG_LEVEL", "error")
	v.SetDefault("BASE_API_URL", DefaultBaseAPIURL)
	v.SetDefault("HTTP_TIMEOUT", 10)

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		APIKey:      v.GetString("API_KEY"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		BaseAPIURL:  v.GetString("BASE_API_URL"),
		HTTPTimeout: v.GetInt32("HTTP_TIMEOUT"),
	}

	return config, nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}
