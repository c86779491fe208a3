package providers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"

	"github.com/tylernap/weather-app/internal/providers"
)

type OpenWeatherServiceTestSuite struct {
	suite.Suite
	apiServer *httptest.Server
	service   providers.OpenWeatherService
	lastQuery string
}

func (s *OpenWeatherServiceTestSuite) SetupTest() {
	s.apiServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.lastQuery = r.URL.Query().Get("q")

		switch s.lastQuery {
		case "Testcity", "Testcity,NY,US":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"name": "Testcity",
				"main": map[string]interface{}{
					"temp":       69.76,
					"feels_like": 63.07,
					"humidity":   30,
				},
				"cod": 200,
			})
		case "Nowhere":
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"cod":     "404",
				"message": "city not found",
			})
		case "MalformedJSON":
			w.Write([]byte("{malformed json"))
		default:
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"cod":500,"message":"Internal error"}`))
		}
	}))

	s.service = providers.NewOpenWeatherService("test_api_key", s.apiServer.URL, 5*time.Second, zerolog.Nop())
}

func (s *OpenWeatherServiceTestSuite) TearDownTest() {
	s.apiServer.Close()
}

func (s *OpenWeatherServiceTestSuite) TestCurrentTemperature_Success() {
	temp, err := s.service.CurrentTemperature("Testcity")
	s.NoError(err)
	s.Equal(69.76, temp)
}

func (s *OpenWeatherServiceTestSuite) TestCurrentTemperature_SendsCommaJoinedQuery() {
	_, err := s.service.CurrentTemperature("Testcity,NY,US")
	s.NoError(err)
	s.Equal("Testcity,NY,US", s.lastQuery)
}

func (s *OpenWeatherServiceTestSuite) TestCurrentTemperature_NotFound() {
	_, err := s.service.CurrentTemperature("Nowhere")
	s.ErrorIs(err, providers.ErrLocationNotFound)
}

func (s *OpenWeatherServiceTestSuite) TestCurrentTemperature_ServerError() {
	_, err := s.service.CurrentTemperature("ServerError")
	s.Error(err)

	var upstreamErr *providers.UpstreamError
	s.ErrorAs(err, &upstreamErr)
	s.Equal(http.StatusInternalServerError, upstreamErr.StatusCode)
	s.Contains(upstreamErr.Body, "Internal error")
}

func (s *OpenWeatherServiceTestSuite) TestCurrentTemperature_MalformedJSON() {
	_, err := s.service.CurrentTemperature("MalformedJSON")
	s.Error(err)
	s.Contains(err.Error(), "malformed JSON")
}

func (s *OpenWeatherServiceTestSuite) TestCurrentTemperature_ConnectionRefused() {
	s.apiServer.Close()

	_, err := s.service.CurrentTemperature("Testcity")
	s.Error(err)
	s.Contains(err.Error(), "weather request failed")
}

func TestOpenWeatherServiceSuite(t *testing.T) {
	suite.Run(t, new(OpenWeatherServiceTestSuite))
}
