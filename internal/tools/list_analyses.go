package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/lakewise/lakewise/internal/framework"
	"github.com/mark3labs/mcp-go/mcp"
)

// ListAnalysesTool handles the waf_list_analyses MCP tool.
type ListAnalysesTool struct {
	index *framework.Index
}

// NewListAnalysesTool creates a ListAnalysesTool.
func NewListAnalysesTool(index *framework.Index) *ListAnalysesTool {
	return &ListAnalysesTool{index: index}
}

// Definition returns the MCP tool definition for waf_list_analyses.
func (t *ListAnalysesTool) Definition() mcp.Tool {
	return mcp.NewTool("waf_list_analyses",
		mcp.WithDescription(
			"List every measure that has executable analyses, with the analyses that can be "+
				"run against the telemetry warehouse.",
		),
	)
}

// Handle processes the waf_list_analyses tool call.
func (t *ListAnalysesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	measures := t.index.MeasuresWithAnalyses()
	if len(measures) == 0 {
		return mcp.NewToolResultText("No measures with analyses are loaded."), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Measures with executable analyses (%d):**\n\n", len(measures))

	total := 0
	for _, m := range measures {
		analyses := t.index.AnalysesOf(m.ID)
		total += len(analyses)
		fmt.Fprintf(&b, "**%s** - %s\n", m.ID, m.BestPractice)
		for _, a := range analyses {
			fmt.Fprintf(&b, "  - **%s**: %s\n", a.ID, a.Description)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "%d analyses in total. Use `waf_run_analysis(analysis_id)` to run one.", total)

	return mcp.NewToolResultText(b.String()), nil
}
