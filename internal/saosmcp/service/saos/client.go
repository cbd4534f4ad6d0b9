// Package saos calls the SAOS judgments API and normalizes HTTP error
// statuses into ErrorEnvelope values.
package saos

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/kiosk404/saos-mcp/internal/saosmcp/pkg/errno"
	"github.com/kiosk404/saos-mcp/pkg/logger"
	"github.com/kiosk404/saos-mcp/pkg/utils/json"
)

// Executor is the query side of the SAOS API used by the tool layer.
type Executor interface {
	// FetchByParams issues a search request with params as the query string.
	FetchByParams(ctx context.Context, params Params) (Result, error)
	// FetchByURL issues a request against a fully formed URL.
	FetchByURL(ctx context.Context, rawURL string) (Result, error)
	// Config returns the endpoints the executor talks to.
	Config() *Config
}

// Client is the HTTP implementation of Executor.
type Client struct {
	cfg        *Config
	httpClient *http.Client
}

var _ Executor = (*Client)(nil)

// NewClient creates a client. A nil httpClient gets one bounded by cfg.Timeout.
func NewClient(cfg *Config, httpClient *http.Client) *Client {
	if cfg == nil {
		cfg = NewConfig()
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		cfg:        cfg,
		httpClient: httpClient,
	}
}

func (c *Client) Config() *Config {
	return c.cfg
}

// FetchByParams calls the search endpoint. An error status becomes an
// ErrorEnvelope echoing params; any other failure is returned as an error.
func (c *Client) FetchByParams(ctx context.Context, params Params) (Result, error) {
	u, err := url.Parse(c.cfg.SearchURL)
	if err != nil {
		return Result{}, fmt.Errorf("%w: parse search url %q: %v", errno.ErrRequest, c.cfg.SearchURL, err)
	}
	q := u.Query()
	for k, v := range params {
		q.Set(k, fmt.Sprint(v))
	}
	u.RawQuery = q.Encode()

	status, detail, err := c.get(ctx, u.String())
	if err != nil {
		return Result{}, err
	}
	if status != nil {
		return NewErrorResult(&ErrorEnvelope{
			Source: SourceSearch,
			Error:  true,
			Status: *status,
			Detail: detail,
			Params: params,
		}), nil
	}
	return NewResult(detail), nil
}

// FetchByURL calls rawURL without extra query parameters. An error status
// becomes an ErrorEnvelope echoing rawURL.
func (c *Client) FetchByURL(ctx context.Context, rawURL string) (Result, error) {
	status, detail, err := c.get(ctx, rawURL)
	if err != nil {
		return Result{}, err
	}
	if status != nil {
		return NewErrorResult(&ErrorEnvelope{
			Source: SourceDetail,
			Error:  true,
			Status: *status,
			Detail: detail,
			URL:    rawURL,
		}), nil
	}
	return NewResult(detail), nil
}

// get performs one GET. For 2xx it returns the decoded body with a nil status.
// For any other status it returns that status and the JSON-or-text detail.
func (c *Client) get(ctx context.Context, rawURL string) (*int, any, error) {
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: create request: %w", errno.ErrRequest, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}

	logger.Debug("[SAOS] GET %s", rawURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: GET %s: %w", errno.ErrRequest, rawURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: GET %s: %w", errno.ErrReadBody, rawURL, err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		var payload any
		if err := json.UnmarshalUseNumber(body, &payload); err != nil {
			return nil, nil, fmt.Errorf("%w: GET %s (status %d): %v", errno.ErrInvalidJSON, rawURL, resp.StatusCode, err)
		}
		return nil, payload, nil
	}

	logger.Warn("[SAOS] GET %s returned status %d", rawURL, resp.StatusCode)

	status := resp.StatusCode
	var detail any
	if err := json.UnmarshalUseNumber(body, &detail); err != nil {
		detail = string(body)
	}
	return &status, detail, nil
}
