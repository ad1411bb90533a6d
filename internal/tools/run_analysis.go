package tools

import (
	"context"
	"fmt"

	"github.com/lakewise/lakewise/internal/framework"
	"github.com/mark3labs/mcp-go/mcp"
)

// RunAnalysisTool handles the waf_run_analysis MCP tool. It looks up an
// analysis in the framework index and runs its query text through the
// default tabular formatter.
type RunAnalysisTool struct {
	index  *framework.Index
	runner QueryRunner
}

// NewRunAnalysisTool creates a RunAnalysisTool. runner may be nil when no
// warehouse is configured — the tool then reports that per call.
func NewRunAnalysisTool(index *framework.Index, runner QueryRunner) *RunAnalysisTool {
	return &RunAnalysisTool{index: index, runner: runner}
}

// Definition returns the MCP tool definition for waf_run_analysis.
func (t *RunAnalysisTool) Definition() mcp.Tool {
	return mcp.NewTool("waf_run_analysis",
		mcp.WithDescription(
			"Run a framework analysis by ID against the telemetry warehouse and return the "+
				"result as a table. Use `waf_list_analyses()` to discover analysis IDs.",
		),
		mcp.WithString("analysis_id",
			mcp.Required(),
			mcp.Description("The analysis ID (e.g. 'CO-01-01-TABLE-FORMATS')"),
		),
	)
}

// Handle processes the waf_run_analysis tool call.
func (t *RunAnalysisTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("analysis_id", "")
	if id == "" {
		return mcp.NewToolResultError("'analysis_id' is required"), nil
	}

	analysis, ok := t.index.Analysis(id)
	if !ok {
		return mcp.NewToolResultText(fmt.Sprintf(
			"Analysis '%s' not found. Use `waf_list_analyses()` to see all available analyses.", id,
		)), nil
	}

	if t.runner == nil {
		return mcp.NewToolResultText(noWarehouseMessage), nil
	}

	result := t.runner.ExecuteFormatted(ctx, analysis.QueryText, nil)

	header := fmt.Sprintf("**Analysis %s** (measure %s)\n%s\n\n", analysis.ID, analysis.MeasureID, analysis.Description)
	return mcp.NewToolResultText(header + result), nil
}
