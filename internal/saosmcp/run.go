package saosmcp

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/kiosk404/saos-mcp/internal/saosmcp/config"
)

// Run starts the MCP server and blocks until SIGINT/SIGTERM or stdin closes.
func Run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := createMCPServer(cfg)
	if err != nil {
		return err
	}

	return srv.PrepareRun().Run(ctx)
}
