package options

import (
	"github.com/kiosk404/saos-mcp/pkg/logger"
	"github.com/kiosk404/saos-mcp/pkg/utils/cliflag"
	"github.com/kiosk404/saos-mcp/pkg/utils/json"
)

type Options struct {
	SAOSOptions   *SAOSOptions    `json:"saos"   mapstructure:"saos"`
	ServerOptions *ServerOptions  `json:"server" mapstructure:"server"`
	LogOptions    *logger.Options `json:"log"    mapstructure:"log"`
}

func NewOptions() *Options {
	return &Options{
		SAOSOptions:   NewSAOSOptions(),
		ServerOptions: NewServerOptions(),
		LogOptions:    logger.NewOptions(),
	}
}

func (o *Options) Flags() (fss cliflag.NamedFlagSets) {
	o.SAOSOptions.AddFlags(fss.FlagSet("saos"))
	o.ServerOptions.AddFlags(fss.FlagSet("server"))
	o.LogOptions.AddFlags(fss.FlagSet("log"))
	return fss
}

// Validate checks every option group and returns all problems found.
func (o *Options) Validate() []error {
	var errs []error
	errs = append(errs, o.SAOSOptions.Validate()...)
	errs = append(errs, o.ServerOptions.Validate()...)
	errs = append(errs, o.LogOptions.Validate()...)
	return errs
}

// Complete set default Options.
func (o *Options) Complete() error {
	return o.ServerOptions.Complete()
}

func (o *Options) String() string {
	data, _ := json.Marshal(o)

	return string(data)
}
