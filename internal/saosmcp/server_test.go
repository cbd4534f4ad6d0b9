package saosmcp

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/kiosk404/saos-mcp/internal/saosmcp/config"
	"github.com/kiosk404/saos-mcp/internal/saosmcp/options"
	"github.com/kiosk404/saos-mcp/pkg/utils/json"
)

// newTestClient starts a fake SAOS API and an in-process MCP client talking to
// a server wired exactly like the real one.
func newTestClient(t *testing.T, handler http.HandlerFunc) (*client.Client, *httptest.Server) {
	t.Helper()

	saosAPI := httptest.NewServer(handler)
	t.Cleanup(saosAPI.Close)

	opts := options.NewOptions()
	opts.SAOSOptions.SearchURL = saosAPI.URL + "/api/search/judgments"
	opts.SAOSOptions.JudgmentURLTemplate = saosAPI.URL + "/api/judgments/{judgment_id}"
	cfg, err := config.CreateConfigFromOptions(opts)
	if err != nil {
		t.Fatalf("CreateConfigFromOptions: %v", err)
	}

	srv, err := createMCPServer(cfg)
	if err != nil {
		t.Fatalf("createMCPServer: %v", err)
	}
	prepared := srv.PrepareRun()

	c, err := client.NewInProcessClient(prepared.mcp)
	if err != nil {
		t.Fatalf("NewInProcessClient: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })

	ctx := context.Background()
	if err := c.Start(ctx); err != nil {
		t.Fatalf("client start: %v", err)
	}
	initReq := mcp.InitializeRequest{}
	initReq.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initReq.Params.ClientInfo = mcp.Implementation{Name: "saos-mcp-test", Version: "0.0.1"}
	if _, err := c.Initialize(ctx, initReq); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	return c, saosAPI
}

func callTool(t *testing.T, c *client.Client, name string, args map[string]any) (*mcp.CallToolResult, error) {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return c.CallTool(context.Background(), req)
}

func decodeText(t *testing.T, res *mcp.CallToolResult) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(resultText(res)), &v); err != nil {
		t.Fatalf("result text is not JSON: %v (%q)", err, resultText(res))
	}
	return v
}

func TestServer_ListTools(t *testing.T) {
	c, _ := newTestClient(t, http.NotFound)

	res, err := c.ListTools(context.Background(), mcp.ListToolsRequest{})
	if err != nil {
		t.Fatalf("ListTools: %v", err)
	}
	var names []string
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	if !reflect.DeepEqual(names, []string{"get_judgment", "search_judgments"}) &&
		!reflect.DeepEqual(names, []string{"search_judgments", "get_judgment"}) {
		t.Fatalf("tools = %v", names)
	}
}

func TestServer_SearchJudgmentsPassThrough(t *testing.T) {
	var gotQuery string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		fmt.Fprint(w, `{"items": []}`)
	})

	res, err := callTool(t, c, "search_judgments", nil)
	if err != nil {
		t.Fatalf("CallTool: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(res))
	}
	if got, want := decodeText(t, res), map[string]any{"items": []any{}}; !reflect.DeepEqual(got, want) {
		t.Fatalf("result = %#v, want %#v", got, want)
	}
	if gotQuery != "pageNumber=0&pageSize=20" {
		t.Fatalf("outbound query = %q", gotQuery)
	}
}

func TestServer_GetJudgmentNotFound(t *testing.T) {
	c, saosAPI := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message": "not found"}`)
	})

	res, err := callTool(t, c, "get_judgment", map[string]any{"judgment_id": 999})
	if err != nil {
		t.Fatalf("CallTool: %v", err)
	}
	want := map[string]any{
		"error":  true,
		"status": float64(404),
		"detail": map[string]any{"message": "not found"},
		"url":    saosAPI.URL + "/api/judgments/999",
	}
	if got := decodeText(t, res); !reflect.DeepEqual(got, want) {
		t.Fatalf("result = %#v, want %#v", got, want)
	}
}

func TestServer_NonJSONSuccessIsProtocolError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "not json")
	})

	if _, err := callTool(t, c, "get_judgment", map[string]any{"judgment_id": 1}); err == nil {
		t.Fatal("expected CallTool to fail for a non-JSON 2xx body")
	}
}

func TestPrintTools(t *testing.T) {
	opts := options.NewOptions()
	cfg, _ := config.CreateConfigFromOptions(opts)
	registry, err := newRegistry(cfg)
	if err != nil {
		t.Fatalf("newRegistry: %v", err)
	}

	var buf bytes.Buffer
	printTools(&buf, registry)
	out := buf.String()
	for _, want := range []string{"search_judgments", "get_judgment", "judgment_id*"} {
		if !strings.Contains(out, want) {
			t.Errorf("tools listing missing %q:\n%s", want, out)
		}
	}
}
