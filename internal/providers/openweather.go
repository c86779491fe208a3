package providers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// ErrLocationNotFound is returned when OpenWeather answers 404 for the query.
var ErrLocationNotFound = errors.New("location not found")

// UpstreamError carries the status and raw body of any other non-200 answer.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("OpenWeather API returned status %d: %s", e.StatusCode, e.Body)
}

type OpenWeatherService interface {
	CurrentTemperature(query string) (float64, error)
	GetHTTPClient() *http.Client
}

type openWeatherService struct {
	apiKey  string
	baseURL string
	client  *http.Client
	logger  zerolog.Logger
}

func NewOpenWeatherService(apiKey, baseURL string, timeout time.Duration, logger zerolog.Logger) OpenWeatherService {
	return &openWeatherService{
		apiKey:  apiKey,
		baseURL: baseURL,
		logger:  logger,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

type CurrentWeatherResponse struct {
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
}

// CurrentTemperature performs a single GET against the current-weather endpoint
// and returns the imperial temperature. Only the HTTP status drives branching;
// the body's own error code is ignored.
func (s *openWeatherService) CurrentTemperature(query string) (float64, error) {
	url := fmt.Sprintf("%s?q=%s&appid=%s&units=imperial", s.baseURL, query, s.apiKey)

	resp, err := s.client.Get(url)
	if err != nil {
		return 0, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("reading weather response: %w", err)
	}

	s.logger.Debug().Int("status", resp.StatusCode).Str("body", string(body)).Msg("Response")

	switch resp.StatusCode {
	case http.StatusOK:
		var apiResp CurrentWeatherResponse
		if err := json.Unmarshal(body, &apiResp); err != nil {
			return 0, fmt.Errorf("OpenWeather returned malformed JSON: %w", err)
		}
		return apiResp.Main.Temp, nil
	case http.StatusNotFound:
		return 0, ErrLocationNotFound
	default:
		return 0, &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}
}

func (s *openWeatherService) GetHTTPClient() *http.Client {
	return s.client
}
