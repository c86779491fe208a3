package location

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// DefaultCountry is appended when the user gives a city and a state but no country.
const DefaultCountry = "US"

const maxTokens = 3

var tokenPattern = regexp.MustCompile(`^[A-Za-z]*$`)

var (
	ErrEmptyLocation = errors.New("A location is required.")
	ErrTooManyTokens = errors.New("The location provided has too many items")
)

type InvalidTokenError struct {
	Raw string
}

func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("%s is not a valid location.", e.Raw)
}

// Location is a validated, normalized "City [STATE [COUNTRY]]" input.
type Location struct {
	tokens []string
}

// Parse splits raw input on whitespace and validates each token. A two-token
// location gets DefaultCountry appended.
func Parse(raw string) (*Location, error) {
	tokens := strings.Fields(raw)

	if len(tokens) == 0 {
		return nil, ErrEmptyLocation
	}
	if len(tokens) > maxTokens {
		return nil, ErrTooManyTokens
	}
	for _, token := range tokens {
		if !tokenPattern.MatchString(token) {
			return nil, &InvalidTokenError{Raw: raw}
		}
	}

	if len(tokens) == 2 {
		tokens = append(tokens, DefaultCountry)
	}

	return &Location{tokens: tokens}, nil
}

// Query joins the tokens with commas, the form the OpenWeather q parameter expects.
func (l *Location) Query() string {
	return strings.Join(l.tokens, ",")
}

// DisplayName is the city token, used as the heading of the output.
func (l *Location) DisplayName() string {
	return l.tokens[0]
}

func (l *Location) String() string {
	return strings.Join(l.tokens, " ")
}
