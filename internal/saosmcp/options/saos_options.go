package options

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/kiosk404/saos-mcp/internal/saosmcp/service/saos"
)

// SAOSOptions holds the remote API endpoints and call timeout.
type SAOSOptions struct {
	SearchURL           string        `json:"search_url"            mapstructure:"search-url"`
	JudgmentURLTemplate string        `json:"judgment_url_template" mapstructure:"judgment-url-template"`
	Timeout             time.Duration `json:"timeout"               mapstructure:"timeout"`
	UserAgent           string        `json:"user_agent"            mapstructure:"user-agent"`
}

// NewSAOSOptions creates SAOSOptions pointing at the public SAOS API.
func NewSAOSOptions() *SAOSOptions {
	cfg := saos.NewConfig()
	return &SAOSOptions{
		SearchURL:           cfg.SearchURL,
		JudgmentURLTemplate: cfg.JudgmentURLTemplate,
		Timeout:             cfg.Timeout,
		UserAgent:           cfg.UserAgent,
	}
}

// Validate checks the SAOSOptions for correctness.
func (o *SAOSOptions) Validate() []error {
	var errs []error
	if err := validateHTTPURL(o.SearchURL); err != nil {
		errs = append(errs, fmt.Errorf("saos.search-url: %w", err))
	}
	if !strings.Contains(o.JudgmentURLTemplate, "{judgment_id}") {
		errs = append(errs, fmt.Errorf("saos.judgment-url-template: must contain the {judgment_id} placeholder"))
	} else if err := validateHTTPURL(strings.ReplaceAll(o.JudgmentURLTemplate, "{judgment_id}", "0")); err != nil {
		errs = append(errs, fmt.Errorf("saos.judgment-url-template: %w", err))
	}
	if o.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("saos.timeout: must be positive, got %s", o.Timeout))
	}
	return errs
}

// AddFlags adds the SAOSOptions flags to the given flag set.
func (o *SAOSOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.SearchURL, "saos.search-url", o.SearchURL, "SAOS judgment search endpoint.")
	fs.StringVar(&o.JudgmentURLTemplate, "saos.judgment-url-template", o.JudgmentURLTemplate,
		"SAOS judgment detail endpoint; {judgment_id} is replaced by the requested id.")
	fs.DurationVar(&o.Timeout, "saos.timeout", o.Timeout, "Timeout for a single SAOS request.")
	fs.StringVar(&o.UserAgent, "saos.user-agent", o.UserAgent, "User-Agent header sent to SAOS.")
}

func validateHTTPURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q in %q", u.Scheme, raw)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host in %q", raw)
	}
	return nil
}
