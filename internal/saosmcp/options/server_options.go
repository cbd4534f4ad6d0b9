package options

import (
	"fmt"
	"net"

	"github.com/spf13/pflag"

	"github.com/kiosk404/saos-mcp/internal/saosmcp/pkg/errno"
)

const (
	TransportStdio          = "stdio"
	TransportSSE            = "sse"
	TransportStreamableHTTP = "streamable-http"
)

// ServerOptions selects the MCP transport. stdio needs nothing else;
// the HTTP transports listen on Addr.
type ServerOptions struct {
	// Transport is "stdio", "sse" or "streamable-http". Default: "stdio".
	Transport string `json:"transport" mapstructure:"transport"`

	// Addr is the listen address for the HTTP transports.
	Addr string `json:"addr" mapstructure:"addr"`

	// BaseURL is the public base URL advertised by the SSE transport.
	// Derived from Addr when empty.
	BaseURL string `json:"base_url" mapstructure:"base-url"`

	// EndpointPath is the streamable-http endpoint.
	EndpointPath string `json:"endpoint_path" mapstructure:"endpoint-path"`
}

// NewServerOptions creates a default ServerOptions instance.
func NewServerOptions() *ServerOptions {
	return &ServerOptions{
		Transport:    TransportStdio,
		Addr:         "127.0.0.1:8000",
		EndpointPath: "/mcp",
	}
}

// Complete fills defaults derived from other fields.
func (o *ServerOptions) Complete() error {
	if o.Transport == "" {
		o.Transport = TransportStdio
	}
	if o.Transport == TransportSSE && o.BaseURL == "" {
		o.BaseURL = o.LocalURL()
	}
	return nil
}

// LocalURL is the http URL a client on this host uses to reach Addr. An empty
// or unspecified listen host is replaced with 127.0.0.1.
func (o *ServerOptions) LocalURL() string {
	host, port, err := net.SplitHostPort(o.Addr)
	if err != nil {
		return "http://" + o.Addr
	}
	if ip := net.ParseIP(host); host == "" || (ip != nil && ip.IsUnspecified()) {
		host = "127.0.0.1"
	}
	return "http://" + net.JoinHostPort(host, port)
}

// Validate checks the ServerOptions for correctness.
func (o *ServerOptions) Validate() []error {
	var errs []error
	switch o.Transport {
	case TransportStdio:
	case TransportSSE, TransportStreamableHTTP:
		if _, _, err := net.SplitHostPort(o.Addr); err != nil {
			errs = append(errs, fmt.Errorf("server.addr: %w", err))
		}
		if o.Transport == TransportStreamableHTTP && (o.EndpointPath == "" || o.EndpointPath[0] != '/') {
			errs = append(errs, fmt.Errorf("server.endpoint-path: must start with '/', got %q", o.EndpointPath))
		}
	default:
		errs = append(errs, fmt.Errorf("server.transport: %w %q (must be 'stdio', 'sse' or 'streamable-http')",
			errno.ErrUnsupportedTransport, o.Transport))
	}
	return errs
}

// AddFlags adds the ServerOptions flags to the given flag set.
func (o *ServerOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Transport, "server.transport", o.Transport, "MCP transport: stdio, sse or streamable-http.")
	fs.StringVar(&o.Addr, "server.addr", o.Addr, "Listen address for the sse and streamable-http transports.")
	fs.StringVar(&o.BaseURL, "server.base-url", o.BaseURL, "Public base URL advertised by the sse transport.")
	fs.StringVar(&o.EndpointPath, "server.endpoint-path", o.EndpointPath, "Endpoint path of the streamable-http transport.")
}
