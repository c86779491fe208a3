package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tylernap/weather-app/config"
	"github.com/tylernap/weather-app/internal/app"
)

func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		logLevel = zerolog.ErrorLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(logLevel).
		With().
		Timestamp().
		Logger()

	logger.Info().Msg("Starting weather application")

	weatherApp := app.New(conf, logger, os.Stdin, os.Stdout, os.Stderr)

	os.Exit(weatherApp.Run(os.Args[1:]))
}
