package tools

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/gg/goption"

	"github.com/kiosk404/saos-mcp/internal/saosmcp/pkg/errno"
)

// optionalString reads a string argument; missing and null are absent.
func optionalString(args map[string]any, key string) (goption.O[string], error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return goption.Nil[string](), nil
	}
	s, ok := raw.(string)
	if !ok {
		return goption.Nil[string](), fmt.Errorf("%w: %s must be a string, got %T", errno.ErrInvalidArgument, key, raw)
	}
	return goption.OK(s), nil
}

// optionalDate reads a calendar date given as YYYY-MM-DD or an RFC 3339
// timestamp; missing and null are absent.
func optionalDate(args map[string]any, key string) (goption.O[time.Time], error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return goption.Nil[time.Time](), nil
	}
	s, ok := raw.(string)
	if !ok {
		return goption.Nil[time.Time](), fmt.Errorf("%w: %s must be a date string, got %T", errno.ErrInvalidArgument, key, raw)
	}
	s = strings.TrimSpace(s)
	if d, err := time.Parse(time.DateOnly, s); err == nil {
		return goption.OK(d), nil
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return goption.OK(time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)), nil
	}
	return goption.Nil[time.Time](), fmt.Errorf("%w: %s must be a date in YYYY-MM-DD format, got %q", errno.ErrInvalidArgument, key, s)
}

// intArg reads an integer argument, returning defaultVal when it is missing or
// null. JSON numbers arrive as float64 and must be integral; numeric strings
// are accepted.
func intArg(args map[string]any, key string, defaultVal int64) (int64, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return defaultVal, nil
	}
	return toInt(key, raw)
}

// requiredIntArg is intArg without a default.
func requiredIntArg(args map[string]any, key string) (int64, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return 0, fmt.Errorf("%w: %s is required", errno.ErrInvalidArgument, key)
	}
	return toInt(key, raw)
}

func toInt(key string, raw any) (int64, error) {
	switch v := raw.(type) {
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) || math.IsNaN(v) {
			return 0, fmt.Errorf("%w: %s must be an integer, got %v", errno.ErrInvalidArgument, key, v)
		}
		return int64(v), nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %s must be an integer, got %q", errno.ErrInvalidArgument, key, v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%w: %s must be an integer, got %T", errno.ErrInvalidArgument, key, raw)
	}
}
