package saosmcp

import (
	"github.com/MakeNowJust/heredoc/v2"

	"github.com/kiosk404/saos-mcp/internal/saosmcp/config"
	"github.com/kiosk404/saos-mcp/internal/saosmcp/options"
	"github.com/kiosk404/saos-mcp/pkg/app"
	"github.com/kiosk404/saos-mcp/pkg/logger"
)

const (
	AppName = "saos-mcp"
)

func NewApp(basename string) *app.App {
	opts := options.NewOptions()
	application := app.NewApp(ServerName,
		basename,
		app.WithOptions(opts),
		app.WithDescription(heredoc.Doc(`
			saos-mcp exposes the SAOS judgments API (https://www.saos.org.pl) as MCP tools.

			Without a subcommand it serves the search_judgments and get_judgment tools
			over stdio. Use --server.transport to serve sse or streamable-http instead.
		`)),
		app.WithDefaultValidArgs(),
		app.WithRunFunc(run(opts)),
		app.WithCommands(
			newToolsCmd(opts),
			newSearchCmd(opts),
			newGetCmd(opts),
			newClientConfigCmd(opts),
		),
	)
	return application
}

func run(opts *options.Options) app.RunFunc {
	return func(basename string) error {
		if err := logger.InitLog(opts.LogOptions); err != nil {
			return err
		}
		defer logger.FlushLog()

		cfg, err := config.CreateConfigFromOptions(opts)
		if err != nil {
			return err
		}

		return Run(cfg)
	}
}
