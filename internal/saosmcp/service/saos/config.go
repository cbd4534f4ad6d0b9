package saos

import (
	"strconv"
	"strings"
	"time"

	"github.com/kiosk404/saos-mcp/pkg/version"
)

const (
	DefaultSearchURL           = "https://www.saos.org.pl/api/search/judgments"
	DefaultJudgmentURLTemplate = "https://www.saos.org.pl/api/judgments/{judgment_id}"
	DefaultTimeout             = 20 * time.Second

	judgmentIDPlaceholder = "{judgment_id}"
)

// Config holds the remote endpoints and the per-call timeout.
type Config struct {
	// SearchURL is the judgment search endpoint.
	SearchURL string
	// JudgmentURLTemplate is the detail endpoint; "{judgment_id}" is replaced by the id.
	JudgmentURLTemplate string
	// Timeout bounds the whole request/response cycle of one call.
	Timeout time.Duration
	// UserAgent is sent with every request.
	UserAgent string
}

// NewConfig returns a Config pointing at the public SAOS API.
func NewConfig() *Config {
	return &Config{
		SearchURL:           DefaultSearchURL,
		JudgmentURLTemplate: DefaultJudgmentURLTemplate,
		Timeout:             DefaultTimeout,
		UserAgent:           "saos-mcp/" + version.GitVersion,
	}
}

// JudgmentURL substitutes id into the detail URL template.
func (c *Config) JudgmentURL(id int64) string {
	return strings.ReplaceAll(c.JudgmentURLTemplate, judgmentIDPlaceholder, strconv.FormatInt(id, 10))
}
