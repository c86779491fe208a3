package cli

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

const usageEpilog = `
For location, the formatting should be "City STATE COUNTRY". State and country codes should follow ISO3166

Examples:
  Chicago
  Chicago IL
  Chicago IL US
`

// Options are the values the operator can pass on the command line. Both are
// optional: a missing location triggers an interactive prompt and a missing
// API key falls back to configuration.
type Options struct {
	Location string
	APIKey   string
}

type Parser struct {
	flags *pflag.FlagSet
	opts  Options
	out   io.Writer
}

// NewParser builds a flag set writing all of its output (errors and help) to out,
// so the standard stream stays reserved for weather output.
func NewParser(out io.Writer) *Parser {
	p := &Parser{out: out}

	p.flags = pflag.NewFlagSet("weather", pflag.ContinueOnError)
	p.flags.SetOutput(out)
	p.flags.StringVarP(&p.opts.Location, "location", "l", "", "Location to search for (ie. Chicago IL)")
	p.flags.StringVarP(&p.opts.APIKey, "api-key", "k", "", "API Key used to interact with openweathermap. Optional if using .env")
	p.flags.Usage = p.PrintHelp

	return p
}

func (p *Parser) Parse(args []string) (*Options, error) {
	if err := p.flags.Parse(args); err != nil {
		return nil, err
	}
	return &p.opts, nil
}

func (p *Parser) PrintHelp() {
	fmt.Fprintln(p.out, "Calls openweathermap.org for weather information")
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, "Usage of weather:")
	p.flags.PrintDefaults()
	fmt.Fprint(p.out, usageEpilog)
}
