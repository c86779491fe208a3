package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/tylernap/weather-app/config"
	"github.com/tylernap/weather-app/internal/cli"
	"github.com/tylernap/weather-app/internal/location"
	"github.com/tylernap/weather-app/internal/providers"
)

const locationPrompt = "Where are you? "

// App runs one weather lookup end to end. Stdin, stdout and stderr are
// injected so tests can substitute fixed input and capture output without
// touching process-level state. Stdout carries only the success lines;
// prompts, help text and diagnostics go to stderr.
type App struct {
	conf   *config.Config
	logger zerolog.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func New(conf *config.Config, logger zerolog.Logger, stdin io.Reader, stdout, stderr io.Writer) *App {
	return &App{
		conf:   conf,
		logger: logger,
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
}

// Run executes the lookup for the given command-line arguments and returns
// the process exit code: 1 for a missing credential or an invalid location,
// 0 otherwise (including not-found and upstream failures).
func (a *App) Run(args []string) int {
	parser := cli.NewParser(a.stderr)

	opts, err := parser.Parse(args)
	if err != nil {
		return 1
	}

	apiKey := a.resolveAPIKey(opts.APIKey)
	if apiKey == "" {
		a.logger.Error().Msg("API key missing! Either fill out a .env file or use -k with your key")
		return 1
	}

	raw := opts.Location
	if raw == "" {
		raw = a.promptLocation()
	}

	loc, err := location.Parse(raw)
	if err != nil {
		a.logger.Error().Msgf("A validation error has occurred: %s", err)
		parser.PrintHelp()
		return 1
	}

	weather := providers.NewOpenWeatherService(apiKey, a.conf.BaseAPIURL, a.conf.HTTPTimeoutDuration(), a.logger)

	temp, err := weather.CurrentTemperature(loc.Query())
	switch {
	case err == nil:
		a.logger.Info().Msg("Successfully retrieved data")
		fmt.Fprintf(a.stdout, "%s weather:\n", loc.DisplayName())
		fmt.Fprintf(a.stdout, "%d degrees Fahrenheit\n", int(temp))
		return 0
	case errors.Is(err, providers.ErrLocationNotFound):
		a.logger.Error().Msgf("Could not find any location for %s", loc)
		return 0
	default:
		var upstreamErr *providers.UpstreamError
		if errors.As(err, &upstreamErr) {
			a.logger.Error().Msgf("An unknown error has occurred with the OpenWeather API: %s", upstreamErr.Body)
			return 0
		}
		a.logger.Error().Err(err).Msg("Could not reach the OpenWeather API")
		return 1
	}
}

// resolveAPIKey prefers the explicit flag value over configuration.
func (a *App) resolveAPIKey(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return a.conf.APIKey
}

func (a *App) promptLocation() string {
	fmt.Fprint(a.stderr, locationPrompt)

	scanner := bufio.NewScanner(a.stdin)
	if !scanner.Scan() {
		return ""
	}
	return scanner.Text()
}
