package logger

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

const (
	FormatText = "text"
	FormatJSON = "json"

	OutputStderr = "stderr"
)

// Options configures the process logger.
// Output is either "stderr" or a file path; stdout is reserved for the stdio transport.
type Options struct {
	Level  string `json:"level"  mapstructure:"level"`
	Format string `json:"format" mapstructure:"format"`
	Output string `json:"output" mapstructure:"output"`
}

// NewOptions returns the default logging options.
func NewOptions() *Options {
	return &Options{
		Level:  logrus.InfoLevel.String(),
		Format: FormatText,
		Output: OutputStderr,
	}
}

// Validate checks the logging options.
func (o *Options) Validate() []error {
	var errs []error
	if _, err := logrus.ParseLevel(o.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	switch strings.ToLower(o.Format) {
	case FormatText, FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("log.format: unsupported format %q (must be 'text' or 'json')", o.Format))
	}
	if o.Output == "" || o.Output == "stdout" {
		errs = append(errs, fmt.Errorf("log.output: %q is not allowed, stdout carries the MCP stdio stream", o.Output))
	}
	return errs
}

// AddFlags adds the logging flags to the given flag set.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Level, "log.level", o.Level, "Minimum log level (debug, info, warn, error).")
	fs.StringVar(&o.Format, "log.format", o.Format, "Log format: text or json.")
	fs.StringVar(&o.Output, "log.output", o.Output, "Log destination: stderr or a file path.")
}
