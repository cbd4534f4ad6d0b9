package saosmcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"

	"github.com/kiosk404/saos-mcp/internal/saosmcp/config"
	"github.com/kiosk404/saos-mcp/internal/saosmcp/options"
	"github.com/kiosk404/saos-mcp/internal/saosmcp/service/tools"
	"github.com/kiosk404/saos-mcp/pkg/logger"
	"github.com/kiosk404/saos-mcp/pkg/utils/json"
)

// localRegistry builds the same registration table the server uses, for the
// subcommands that call tools in-process.
func localRegistry(opts *options.Options) (*tools.Registry, error) {
	if err := logger.InitLog(opts.LogOptions); err != nil {
		return nil, err
	}
	cfg, err := config.CreateConfigFromOptions(opts)
	if err != nil {
		return nil, err
	}
	return newRegistry(cfg)
}

func newToolsCmd(opts *options.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the MCP tools this server registers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := localRegistry(opts)
			if err != nil {
				return err
			}
			defer logger.FlushLog()

			printTools(cmd.OutOrStdout(), registry)
			return nil
		},
	}
}

func printTools(out io.Writer, registry *tools.Registry) {
	bold := color.New(color.Bold).SprintFunc()

	table := uitable.New()
	table.MaxColWidth = 60
	table.Wrap = true
	table.AddRow(bold("NAME"), bold("TITLE"), bold("ARGUMENTS"), bold("DESCRIPTION"))
	for _, e := range registry.Entries() {
		table.AddRow(e.Name(), e.Tool.Annotations.Title, toolArguments(e.Tool), strings.TrimSpace(e.Tool.Description))
	}
	fmt.Fprintln(out, table)
}

// toolArguments renders the schema properties, marking required ones with '*'.
func toolArguments(t mcp.Tool) string {
	required := make(map[string]bool, len(t.InputSchema.Required))
	for _, name := range t.InputSchema.Required {
		required[name] = true
	}

	names := make([]string, 0, len(t.InputSchema.Properties))
	for name := range t.InputSchema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name := range names {
		if required[name] {
			names[i] = name + "*"
		}
	}
	return strings.Join(names, ", ")
}

func newSearchCmd(opts *options.Options) *cobra.Command {
	var (
		query, courtType, judgmentType string
		dateFrom, dateTo               string
		page, pageSize                 int
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Call search_judgments once and print the result",
		Example: heredoc.Doc(`
			# Sentences of common courts mentioning "frankowicze" from 2021
			saos-mcp search --query frankowicze --court-type COMMON --judgment-type SENTENCE \
			    --date-from 2021-01-01 --date-to 2021-12-31 --page-size 5
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			callArgs := map[string]any{
				"page":     page,
				"pageSize": pageSize,
			}
			flags := cmd.Flags()
			setIfChanged := func(flag, arg, value string) {
				if flags.Changed(flag) {
					callArgs[arg] = value
				}
			}
			setIfChanged("query", "query", query)
			setIfChanged("court-type", "courtType", courtType)
			setIfChanged("judgment-type", "judgmentType", judgmentType)
			setIfChanged("date-from", "dateFrom", dateFrom)
			setIfChanged("date-to", "dateTo", dateTo)

			return callAndPrint(cmd.Context(), cmd.OutOrStdout(), opts, tools.SearchJudgmentsToolName, callArgs)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&query, "query", "", "Free-text query.")
	fs.StringVar(&courtType, "court-type", "", "Court type filter.")
	fs.StringVar(&judgmentType, "judgment-type", "", "Judgment type filter.")
	fs.StringVar(&dateFrom, "date-from", "", "Earliest judgment date (YYYY-MM-DD).")
	fs.StringVar(&dateTo, "date-to", "", "Latest judgment date (YYYY-MM-DD).")
	fs.IntVar(&page, "page", 0, "Zero-based page number.")
	fs.IntVar(&pageSize, "page-size", 20, "Results per page.")

	return cmd
}

func newClientConfigCmd(opts *options.Options) *cobra.Command {
	var (
		name  string
		file  string
		write bool
		args  []string
	)

	cmd := &cobra.Command{
		Use:   "client-config",
		Short: "Print or merge an mcpServers entry for MCP clients",
		Long: heredoc.Doc(`
			Render the "mcpServers" entry an MCP client (Claude Desktop, VS Code, ...)
			needs to start or reach this server. With --file the entry is merged into
			that file's existing servers; --write saves the result instead of printing it.
		`),
		Example: heredoc.Doc(`
			saos-mcp client-config --name saos
			saos-mcp client-config --file ~/.config/Claude/claude_desktop_config.json --write
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := NewMCPClientConfig()
			if file != "" {
				loaded, err := LoadMCPClientConfig(file)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			command, err := os.Executable()
			if err != nil {
				command = AppName
			}
			cfg.SetServer(name, clientEntry(command, opts.ServerOptions, args))

			if write {
				if file == "" {
					return errors.New("--write requires --file")
				}
				if err := cfg.Save(file); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s server %q written to %s\n", color.GreenString("✔"), name, file)
				return nil
			}

			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&name, "name", "saos", "Server name under mcpServers.")
	fs.StringVar(&file, "file", "", "Existing MCP client config to merge into.")
	fs.BoolVar(&write, "write", false, "Write the merged config back to --file.")
	fs.StringSliceVar(&args, "arg", nil, "Extra argument passed to the server command (repeatable).")

	return cmd
}

func newGetCmd(opts *options.Options) *cobra.Command {
	return &cobra.Command{
		Use:     "get JUDGMENT_ID",
		Short:   "Call get_judgment once and print the result",
		Example: "  saos-mcp get 12345",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return callAndPrint(cmd.Context(), cmd.OutOrStdout(), opts, tools.GetJudgmentToolName,
				map[string]any{"judgment_id": args[0]})
		},
	}
}

func callAndPrint(ctx context.Context, out io.Writer, opts *options.Options, name string, args map[string]any) error {
	if ctx == nil {
		ctx = context.Background()
	}

	registry, err := localRegistry(opts)
	if err != nil {
		return err
	}
	defer logger.FlushLog()

	res, err := registry.Call(ctx, name, args)
	if err != nil {
		return err
	}
	if res.IsError {
		return errors.New(resultText(res))
	}

	data, err := json.MarshalIndent(res.StructuredContent, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Fprintln(out, string(data))
	return nil
}

func resultText(res *mcp.CallToolResult) string {
	var parts []string
	for _, c := range res.Content {
		switch tc := c.(type) {
		case mcp.TextContent:
			parts = append(parts, tc.Text)
		case *mcp.TextContent:
			parts = append(parts, tc.Text)
		}
	}
	return strings.Join(parts, "\n")
}
