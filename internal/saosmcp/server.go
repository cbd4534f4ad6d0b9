package saosmcp

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/kiosk404/saos-mcp/internal/saosmcp/config"
	"github.com/kiosk404/saos-mcp/internal/saosmcp/options"
	"github.com/kiosk404/saos-mcp/internal/saosmcp/pkg/errno"
	"github.com/kiosk404/saos-mcp/internal/saosmcp/service/saos"
	"github.com/kiosk404/saos-mcp/internal/saosmcp/service/tools"
	"github.com/kiosk404/saos-mcp/pkg/logger"
	"github.com/kiosk404/saos-mcp/pkg/version"
)

const (
	ServerName = "SAOS Judgments Search"

	shutdownTimeout = 10 * time.Second
)

type mcpServer struct {
	cfg      *config.Config
	registry *tools.Registry
	mcp      *server.MCPServer
}

type preparedMCPServer struct {
	*mcpServer
}

// NewMCPServer creates an MCP server exposing every tool in the registry.
func NewMCPServer(registry *tools.Registry) *server.MCPServer {
	s := server.NewMCPServer(ServerName, version.GitVersion,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	registry.ApplyTo(s)
	return s
}

// newRegistry wires the SAOS executor into the tool registration table.
func newRegistry(cfg *config.Config) (*tools.Registry, error) {
	saosCfg, err := cfg.SAOSConfig()
	if err != nil {
		return nil, err
	}
	registry, err := tools.NewSAOSRegistry(saos.NewClient(saosCfg, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}
	return registry, nil
}

func createMCPServer(cfg *config.Config) (*mcpServer, error) {
	registry, err := newRegistry(cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("[SAOS] %d tools registered (search endpoint %s)", registry.Len(), cfg.SAOSOptions.SearchURL)

	return &mcpServer{
		cfg:      cfg,
		registry: registry,
	}, nil
}

func (s *mcpServer) PrepareRun() preparedMCPServer {
	s.mcp = NewMCPServer(s.registry)
	return preparedMCPServer{s}
}

// Run serves MCP on the configured transport until ctx is cancelled.
func (s preparedMCPServer) Run(ctx context.Context) error {
	opts := s.cfg.ServerOptions
	switch opts.Transport {
	case options.TransportStdio:
		return s.runStdio(ctx)
	case options.TransportSSE:
		sse := server.NewSSEServer(s.mcp, server.WithBaseURL(opts.BaseURL))
		return s.runHTTP(ctx, opts.Transport, opts.Addr, sse.Start, sse.Shutdown)
	case options.TransportStreamableHTTP:
		h := server.NewStreamableHTTPServer(s.mcp, server.WithEndpointPath(opts.EndpointPath))
		return s.runHTTP(ctx, opts.Transport, opts.Addr, h.Start, h.Shutdown)
	default:
		return fmt.Errorf("%w: %q", errno.ErrUnsupportedTransport, opts.Transport)
	}
}

func (s preparedMCPServer) runStdio(ctx context.Context) error {
	logger.Info("[SAOS] serving MCP over stdio")

	stdio := server.NewStdioServer(s.mcp)
	w := logger.Writer()
	defer w.Close()
	stdio.SetErrorLogger(log.New(w, "", 0))

	err := stdio.Listen(ctx, os.Stdin, os.Stdout)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("[SAOS] stdio transport closed")
	return nil
}

func (s preparedMCPServer) runHTTP(ctx context.Context, transport, addr string,
	start func(string) error, shutdown func(context.Context) error) error {
	logger.Info("[SAOS] serving MCP over %s on %s", transport, addr)

	errCh := make(chan error, 1)
	go func() {
		errCh <- start(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("%s transport: %w", transport, err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("%s transport shutdown: %w", transport, err)
	}
	logger.Info("[SAOS] %s transport shut down", transport)
	return nil
}
