package errno

import (
	"errors"
)

var (
	ErrRequest              = errors.New("saos request failed")
	ErrReadBody             = errors.New("read saos response body")
	ErrInvalidJSON          = errors.New("saos response is not valid JSON")
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrEmptyToolName        = errors.New("tool name is empty")
	ErrDuplicateTool        = errors.New("tool already registered")
	ErrToolNotFound         = errors.New("tool not found")
	ErrUnsupportedTransport = errors.New("unsupported transport")
)
