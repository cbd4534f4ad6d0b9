// Package tools declares the SAOS tools and keeps them in an explicit
// registration table that is handed to the MCP server at startup.
package tools

import (
	"context"
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/kiosk404/saos-mcp/internal/saosmcp/pkg/errno"
	"github.com/kiosk404/saos-mcp/internal/saosmcp/service/saos"
	"github.com/kiosk404/saos-mcp/pkg/logger"
)

// Entry pairs a tool declaration (name, description, input schema) with its handler.
type Entry struct {
	Tool    mcp.Tool
	Handler server.ToolHandlerFunc
}

// Name returns the tool name.
func (e Entry) Name() string {
	return e.Tool.Name
}

// Registry is the name → handler → schema table. Registration order is kept
// so listings are stable.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
	order   []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]Entry),
	}
}

// Register adds e. Names must be non-empty and unique.
func (r *Registry) Register(e Entry) error {
	name := e.Name()
	if name == "" {
		return errno.ErrEmptyToolName
	}
	if e.Handler == nil {
		return fmt.Errorf("tool %q: handler is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[name]; ok {
		return fmt.Errorf("%w: %q", errno.ErrDuplicateTool, name)
	}
	r.entries[name] = e
	r.order = append(r.order, name)
	return nil
}

// Get returns the entry registered under name.
func (r *Registry) Get(name string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	return e, ok
}

// Entries returns all entries in registration order.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Entry, 0, len(r.order))
	for _, name := range r.order {
		result = append(result, r.entries[name])
	}
	return result
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// ApplyTo registers every entry with the MCP server.
func (r *Registry) ApplyTo(s *server.MCPServer) {
	for _, e := range r.Entries() {
		s.AddTool(e.Tool, e.Handler)
		logger.Debug("[Tools] registered tool %q", e.Name())
	}
}

// Call invokes a registered tool directly, bypassing any transport.
func (r *Registry) Call(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	e, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errno.ErrToolNotFound, name)
	}

	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return e.Handler(ctx, req)
}

// NewSAOSRegistry builds the registration table for the SAOS tools.
func NewSAOSRegistry(exec saos.Executor) (*Registry, error) {
	r := NewRegistry()
	for _, e := range NewJudgmentTools(exec).Entries() {
		if err := r.Register(e); err != nil {
			return nil, err
		}
	}
	return r, nil
}
