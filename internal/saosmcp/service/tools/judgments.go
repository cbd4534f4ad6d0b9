package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/kiosk404/saos-mcp/internal/saosmcp/service/saos"
	"github.com/kiosk404/saos-mcp/pkg/logger"
	"github.com/kiosk404/saos-mcp/pkg/utils/json"
)

const (
	SearchJudgmentsToolName = "search_judgments"
	GetJudgmentToolName     = "get_judgment"
)

// Tool argument names as seen by MCP clients.
const (
	argQuery        = "query"
	argCourtType    = "courtType"
	argJudgmentType = "judgmentType"
	argDateFrom     = "dateFrom"
	argDateTo       = "dateTo"
	argPage         = "page"
	argPageSize     = "pageSize"
	argJudgmentID   = "judgment_id"
)

// JudgmentTools maps tool arguments onto SAOS queries.
type JudgmentTools struct {
	exec saos.Executor
}

// NewJudgmentTools creates the tool set backed by exec.
func NewJudgmentTools(exec saos.Executor) *JudgmentTools {
	return &JudgmentTools{exec: exec}
}

// Entries returns the tool declarations paired with their handlers.
func (t *JudgmentTools) Entries() []Entry {
	return []Entry{
		{Tool: SearchJudgmentsTool(), Handler: t.SearchJudgments},
		{Tool: GetJudgmentTool(), Handler: t.GetJudgment},
	}
}

// SearchJudgmentsTool declares search_judgments and its input schema.
func SearchJudgmentsTool() mcp.Tool {
	return mcp.NewTool(SearchJudgmentsToolName,
		mcp.WithDescription(heredoc.Doc(`
			Search judgments in the SAOS database (Polish court decisions) by the given criteria.
			All filters are optional; results are paginated with page and pageSize.
		`)),
		mcp.WithTitleAnnotation("Search SAOS judgments"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
		mcp.WithString(argQuery,
			mcp.Description("Free-text query matched against all judgment fields."),
		),
		mcp.WithString(argCourtType,
			mcp.Description("Court type filter, e.g. COMMON, SUPREME, ADMINISTRATIVE, CONSTITUTIONAL_TRIBUNAL, NATIONAL_APPEAL_CHAMBER."),
		),
		mcp.WithString(argJudgmentType,
			mcp.Description("Judgment type filter, e.g. SENTENCE, DECISION, RESOLUTION, REGULATION, REASONS."),
		),
		mcp.WithString(argDateFrom,
			mcp.Description("Earliest judgment date (YYYY-MM-DD)."),
			mcp.Pattern(`^\d{4}-\d{2}-\d{2}`),
		),
		mcp.WithString(argDateTo,
			mcp.Description("Latest judgment date (YYYY-MM-DD)."),
			mcp.Pattern(`^\d{4}-\d{2}-\d{2}`),
		),
		mcp.WithNumber(argPage,
			mcp.Description("Zero-based page number."),
			mcp.DefaultNumber(saos.DefaultPage),
		),
		mcp.WithNumber(argPageSize,
			mcp.Description("Number of results per page."),
			mcp.DefaultNumber(saos.DefaultPageSize),
		),
	)
}

// GetJudgmentTool declares get_judgment and its input schema.
func GetJudgmentTool() mcp.Tool {
	return mcp.NewTool(GetJudgmentToolName,
		mcp.WithDescription("Fetch the full text and metadata of a single judgment by its SAOS id."),
		mcp.WithTitleAnnotation("Get SAOS judgment"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
		mcp.WithNumber(argJudgmentID,
			mcp.Description("Internal SAOS judgment identifier."),
			mcp.Required(),
		),
	)
}

// SearchCriteriaFromArgs coerces raw tool arguments into search criteria.
func SearchCriteriaFromArgs(args map[string]any) (saos.SearchCriteria, error) {
	c := saos.NewSearchCriteria()
	var err error

	if c.Query, err = optionalString(args, argQuery); err != nil {
		return c, err
	}
	if c.CourtType, err = optionalString(args, argCourtType); err != nil {
		return c, err
	}
	if c.JudgmentType, err = optionalString(args, argJudgmentType); err != nil {
		return c, err
	}
	if c.DateFrom, err = optionalDate(args, argDateFrom); err != nil {
		return c, err
	}
	if c.DateTo, err = optionalDate(args, argDateTo); err != nil {
		return c, err
	}

	page, err := intArg(args, argPage, saos.DefaultPage)
	if err != nil {
		return c, err
	}
	pageSize, err := intArg(args, argPageSize, saos.DefaultPageSize)
	if err != nil {
		return c, err
	}
	c.Page = int(page)
	c.PageSize = int(pageSize)

	return c, nil
}

// SearchJudgments handles search_judgments.
func (t *JudgmentTools) SearchJudgments(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	criteria, err := SearchCriteriaFromArgs(req.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	params := criteria.Params()
	log := invocationLog(SearchJudgmentsToolName)
	log.Info("search %s", params.Encode())

	start := time.Now()
	res, err := t.exec.FetchByParams(ctx, params)
	if err != nil {
		log.Error("search failed after %s: %v", time.Since(start), err)
		return nil, fmt.Errorf("%s: %w", SearchJudgmentsToolName, err)
	}
	log.Info("search done in %s (error envelope: %t)", time.Since(start), res.IsError())

	return toolResult(res)
}

// GetJudgment handles get_judgment.
func (t *JudgmentTools) GetJudgment(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requiredIntArg(req.GetArguments(), argJudgmentID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	u := t.exec.Config().JudgmentURL(id)
	log := invocationLog(GetJudgmentToolName)
	log.Info("fetch judgment %d", id)

	start := time.Now()
	res, err := t.exec.FetchByURL(ctx, u)
	if err != nil {
		log.Error("fetch judgment %d failed after %s: %v", id, time.Since(start), err)
		return nil, fmt.Errorf("%s: %w", GetJudgmentToolName, err)
	}
	log.Info("fetch judgment %d done in %s (error envelope: %t)", id, time.Since(start), res.IsError())

	return toolResult(res)
}

// toolResult returns the envelope as structured content with a JSON text
// fallback for clients that ignore structured output.
func toolResult(res saos.Result) (*mcp.CallToolResult, error) {
	value := res.Value()
	text, err := json.MarshalString(value)
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	return mcp.NewToolResultStructured(value, text), nil
}

type invocation struct {
	tool string
	id   string
}

func invocationLog(tool string) invocation {
	return invocation{tool: tool, id: uuid.NewString()}
}

func (i invocation) Info(format string, args ...any) {
	logger.WithFields(logger.Fields{"tool": i.tool, "request_id": i.id}).Infof(format, args...)
}

func (i invocation) Error(format string, args ...any) {
	logger.WithFields(logger.Fields{"tool": i.tool, "request_id": i.id}).Errorf(format, args...)
}
