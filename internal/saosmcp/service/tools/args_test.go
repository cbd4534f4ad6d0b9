package tools

import (
	"errors"
	"reflect"
	"testing"

	"github.com/kiosk404/saos-mcp/internal/saosmcp/pkg/errno"
	"github.com/kiosk404/saos-mcp/internal/saosmcp/service/saos"
)

func TestSearchCriteriaFromArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args map[string]any
		want saos.Params
	}{
		{
			name: "no arguments",
			args: nil,
			want: saos.Params{"pageNumber": 0, "pageSize": 20},
		},
		{
			name: "nulls are absent",
			args: map[string]any{"query": nil, "dateFrom": nil, "page": nil},
			want: saos.Params{"pageNumber": 0, "pageSize": 20},
		},
		{
			name: "every argument",
			args: map[string]any{
				"query":        "najem",
				"courtType":    "COMMON",
				"judgmentType": "SENTENCE",
				"dateFrom":     "2018-01-01",
				"dateTo":       "2018-12-31T10:00:00Z",
				"page":         float64(2),
				"pageSize":     "10",
			},
			want: saos.Params{
				"pageNumber":       2,
				"pageSize":         10,
				"all":              "najem",
				"courtType":        "COMMON",
				"judgmentType":     "SENTENCE",
				"judgmentDateFrom": "2018-01-01",
				"judgmentDateTo":   "2018-12-31",
			},
		},
		{
			name: "empty strings dropped",
			args: map[string]any{"query": "", "courtType": "", "judgmentType": ""},
			want: saos.Params{"pageNumber": 0, "pageSize": 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, err := SearchCriteriaFromArgs(tt.args)
			if err != nil {
				t.Fatalf("SearchCriteriaFromArgs returned error: %v", err)
			}
			if got := c.Params(); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Params() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestSearchCriteriaFromArgs_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args map[string]any
	}{
		{name: "query not a string", args: map[string]any{"query": 12.0}},
		{name: "courtType not a string", args: map[string]any{"courtType": true}},
		{name: "fractional page", args: map[string]any{"page": 1.5}},
		{name: "non-numeric pageSize", args: map[string]any{"pageSize": "twenty"}},
		{name: "malformed date", args: map[string]any{"dateFrom": "01.02.2020"}},
		{name: "empty date", args: map[string]any{"dateTo": ""}},
		{name: "date not a string", args: map[string]any{"dateTo": 20200101.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := SearchCriteriaFromArgs(tt.args); !errors.Is(err, errno.ErrInvalidArgument) {
				t.Fatalf("err = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestRequiredIntArg(t *testing.T) {
	t.Parallel()

	if _, err := requiredIntArg(map[string]any{}, "judgment_id"); !errors.Is(err, errno.ErrInvalidArgument) {
		t.Fatalf("missing: err = %v", err)
	}
	for _, raw := range []any{999, int64(999), float64(999), "999"} {
		got, err := requiredIntArg(map[string]any{"judgment_id": raw}, "judgment_id")
		if err != nil || got != 999 {
			t.Fatalf("requiredIntArg(%#v) = %d, %v", raw, got, err)
		}
	}
}
