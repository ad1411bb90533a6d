package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/lakewise/lakewise/internal/framework"
	"github.com/mark3labs/mcp-go/mcp"
)

// GetPrincipleTool handles the waf_get_principle MCP tool.
type GetPrincipleTool struct {
	index *framework.Index
}

// NewGetPrincipleTool creates a GetPrincipleTool.
func NewGetPrincipleTool(index *framework.Index) *GetPrincipleTool {
	return &GetPrincipleTool{index: index}
}

// Definition returns the MCP tool definition for waf_get_principle.
func (t *GetPrincipleTool) Definition() mcp.Tool {
	return mcp.NewTool("waf_get_principle",
		mcp.WithDescription(
			"Get a well-architected framework principle by ID, with its measures.",
		),
		mcp.WithString("principle_id",
			mcp.Required(),
			mcp.Description("The principle ID (e.g. 'CO-01', 'DG-01', 'RE-01')"),
		),
	)
}

// Handle processes the waf_get_principle tool call.
func (t *GetPrincipleTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("principle_id", "")
	if id == "" {
		return mcp.NewToolResultError("'principle_id' is required"), nil
	}

	principle, ok := t.index.Principle(id)
	if !ok {
		return mcp.NewToolResultText(fmt.Sprintf(
			"Principle '%s' not found. Use `waf_list_principles()` to see all available principles.", id,
		)), nil
	}

	measures := t.index.MeasuresOf(principle.ID)

	var b strings.Builder
	fmt.Fprintf(&b, "**Principle: %s**\n", principle.ID)
	fmt.Fprintf(&b, "**Pillar:** %s\n", principle.PillarName)
	fmt.Fprintf(&b, "**Description:** %s\n\n", principle.Description)
	fmt.Fprintf(&b, "**Measures:** %d\n\n", len(measures))

	if len(measures) > 0 {
		b.WriteString("**Measures in this principle:**\n")
		for _, m := range measures {
			fmt.Fprintf(&b, "- **%s**: %s\n", m.ID, m.BestPractice)
			if m.Capabilities != "" {
				fmt.Fprintf(&b, "  *Capabilities: %s*\n", m.Capabilities)
			}
		}
	}

	b.WriteString("\nUse `waf_get_measure(measure_id)` to get detailed information about any measure.")

	return mcp.NewToolResultText(b.String()), nil
}
