package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitLog_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "saos-mcp.log")

	if err := InitLog(&Options{Level: "debug", Format: FormatJSON, Output: path}); err != nil {
		t.Fatalf("InitLog returned error: %v", err)
	}
	Info("[Test] hello %s", "world")
	FlushLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"[Test] hello world"`) {
		t.Fatalf("log file missing message, got %s", data)
	}
}

func TestInitLog_InvalidLevel(t *testing.T) {
	if err := InitLog(&Options{Level: "loud", Format: FormatText, Output: OutputStderr}); err == nil {
		t.Fatal("expected error for invalid level")
	}
}

func TestOptionsValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    Options
		wantErr int
	}{
		{name: "defaults", opts: *NewOptions(), wantErr: 0},
		{name: "stdout rejected", opts: Options{Level: "info", Format: FormatText, Output: "stdout"}, wantErr: 1},
		{name: "bad format and level", opts: Options{Level: "nope", Format: "xml", Output: OutputStderr}, wantErr: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.opts.Validate(); len(got) != tt.wantErr {
				t.Fatalf("Validate() returned %d errors (%v), want %d", len(got), got, tt.wantErr)
			}
		})
	}
}
