package config

import (
	"fmt"

	"github.com/jinzhu/copier"

	"github.com/kiosk404/saos-mcp/internal/saosmcp/options"
	"github.com/kiosk404/saos-mcp/internal/saosmcp/service/saos"
)

// Config is the running configuration structure of the saos-mcp service.
type Config struct {
	*options.Options
}

// CreateConfigFromOptions creates a running configuration instance based
// on the given options.
func CreateConfigFromOptions(opts *options.Options) (*Config, error) {
	return &Config{opts}, nil
}

// SAOSConfig builds the executor configuration from the saos option group.
func (c *Config) SAOSConfig() (*saos.Config, error) {
	cfg := saos.NewConfig()
	if err := copier.CopyWithOption(cfg, c.SAOSOptions, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, fmt.Errorf("copy saos options: %w", err)
	}
	return cfg, nil
}
