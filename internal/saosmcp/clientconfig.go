package saosmcp

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kiosk404/saos-mcp/internal/saosmcp/options"
	"github.com/kiosk404/saos-mcp/pkg/utils/json"
)

// MCPClientConfig is the client-side MCP configuration file used by Claude
// Desktop, VS Code and others.
//
//	{
//	  "mcpServers": {
//	    "saos": {
//	      "command": "/usr/local/bin/saos-mcp",
//	      "args": ["--log.output", "/tmp/saos-mcp.log"]
//	    }
//	  }
//	}
//
// Server entries are kept as decoded from the file and only the entry passed
// to SetServer is replaced, so unknown keys survive a save at every level.
type MCPClientConfig struct {
	MCPServers map[string]any `json:"mcpServers"`

	rest map[string]any
}

// ClientServerEntry launches or locates one MCP server.
type ClientServerEntry struct {
	Type    string            `json:"type,omitempty"`
	Command string            `json:"command,omitempty"`
	Args    []string          `json:"args,omitempty"`
	Env     map[string]string `json:"env,omitempty"`
	URL     string            `json:"url,omitempty"`
}

// NewMCPClientConfig returns a config with no servers.
func NewMCPClientConfig() *MCPClientConfig {
	return &MCPClientConfig{
		MCPServers: make(map[string]any),
		rest:       make(map[string]any),
	}
}

// LoadMCPClientConfig reads path. A missing file yields an empty config.
func LoadMCPClientConfig(path string) (*MCPClientConfig, error) {
	cfg := NewMCPClientConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read MCP client config %q: %w", path, err)
	}

	var raw map[string]any
	if err := json.UnmarshalUseNumber(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse MCP client config %q: %w", path, err)
	}
	if raw == nil {
		return cfg, nil
	}

	switch servers := raw["mcpServers"].(type) {
	case nil:
	case map[string]any:
		cfg.MCPServers = servers
	default:
		return nil, fmt.Errorf("failed to parse MCP client config %q: mcpServers must be an object, got %T", path, servers)
	}
	delete(raw, "mcpServers")
	cfg.rest = raw

	return cfg, nil
}

// SetServer replaces the entry stored under name.
func (c *MCPClientConfig) SetServer(name string, entry *ClientServerEntry) {
	if c.MCPServers == nil {
		c.MCPServers = make(map[string]any)
	}
	c.MCPServers[name] = entry
}

// Marshal renders the config including preserved keys.
func (c *MCPClientConfig) Marshal() ([]byte, error) {
	out := make(map[string]any, len(c.rest)+1)
	for k, v := range c.rest {
		out[k] = v
	}
	out["mcpServers"] = c.MCPServers
	return json.MarshalIndent(out, "", "  ")
}

// Save writes the config to path, creating parent directories.
func (c *MCPClientConfig) Save(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// clientEntry describes how an MCP client reaches this server with the given
// server options.
func clientEntry(command string, opts *options.ServerOptions, extraArgs []string) *ClientServerEntry {
	switch opts.Transport {
	case options.TransportSSE:
		base := opts.BaseURL
		if base == "" {
			base = opts.LocalURL()
		}
		return &ClientServerEntry{Type: "sse", URL: base + "/sse"}
	case options.TransportStreamableHTTP:
		return &ClientServerEntry{Type: "http", URL: opts.LocalURL() + opts.EndpointPath}
	default:
		return &ClientServerEntry{Command: command, Args: extraArgs}
	}
}
