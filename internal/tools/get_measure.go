package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/lakewise/lakewise/internal/framework"
	"github.com/mark3labs/mcp-go/mcp"
)

// GetMeasureTool handles the waf_get_measure MCP tool.
type GetMeasureTool struct {
	index *framework.Index
}

// NewGetMeasureTool creates a GetMeasureTool.
func NewGetMeasureTool(index *framework.Index) *GetMeasureTool {
	return &GetMeasureTool{index: index}
}

// Definition returns the MCP tool definition for waf_get_measure.
func (t *GetMeasureTool) Definition() mcp.Tool {
	return mcp.NewTool("waf_get_measure",
		mcp.WithDescription(
			"Get full detail for a well-architected framework measure: best practice, "+
				"platform capabilities, implementation guidance, and any bound analyses.",
		),
		mcp.WithString("measure_id",
			mcp.Required(),
			mcp.Description("The measure ID (e.g. 'CO-01-01', 'DG-01-01')"),
		),
	)
}

// Handle processes the waf_get_measure tool call.
func (t *GetMeasureTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("measure_id", "")
	if id == "" {
		return mcp.NewToolResultError("'measure_id' is required"), nil
	}

	measure, ok := t.index.Measure(id)
	if !ok {
		return mcp.NewToolResultText(fmt.Sprintf(
			"Measure '%s' not found. Use `waf_search_measures(search_term)` to find relevant measures.", id,
		)), nil
	}

	principleDesc := "Unknown"
	if principle, ok := t.index.Principle(measure.PrincipleID); ok {
		principleDesc = principle.Description
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Measure: %s**\n\n", measure.ID)
	fmt.Fprintf(&b, "**Pillar:** %s\n", measure.PillarID)
	fmt.Fprintf(&b, "**Principle:** %s - %s\n", measure.PrincipleID, principleDesc)
	fmt.Fprintf(&b, "**Best Practice:** %s\n\n", measure.BestPractice)

	if measure.Capabilities != "" {
		fmt.Fprintf(&b, "**Platform Capabilities:** %s\n\n", measure.Capabilities)
	}

	fmt.Fprintf(&b, "**Implementation Details:**\n%s", measure.Details)

	if analyses := t.index.AnalysesOf(measure.ID); len(analyses) > 0 {
		b.WriteString("\n\n**Analyses for this measure:**\n")
		for _, a := range analyses {
			fmt.Fprintf(&b, "- **%s**: %s\n", a.ID, a.Description)
		}
		b.WriteString("\nUse `waf_run_analysis(analysis_id)` to run any of them against the warehouse.")
	}

	return mcp.NewToolResultText(b.String()), nil
}
