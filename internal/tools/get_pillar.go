package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/lakewise/lakewise/internal/framework"
	"github.com/mark3labs/mcp-go/mcp"
)

// GetPillarTool handles the waf_get_pillar MCP tool.
type GetPillarTool struct {
	index *framework.Index
}

// NewGetPillarTool creates a GetPillarTool over the loaded framework index.
func NewGetPillarTool(index *framework.Index) *GetPillarTool {
	return &GetPillarTool{index: index}
}

// Definition returns the MCP tool definition for waf_get_pillar.
func (t *GetPillarTool) Definition() mcp.Tool {
	return mcp.NewTool("waf_get_pillar",
		mcp.WithDescription(
			"Get a well-architected framework pillar by ID, with its principles and measure counts.",
		),
		mcp.WithString("pillar_id",
			mcp.Required(),
			mcp.Description("The pillar ID (e.g. 'CO', 'DG', 'RE', 'SE', 'PE', 'SU', 'IU', 'OE')"),
		),
	)
}

// Handle processes the waf_get_pillar tool call.
func (t *GetPillarTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("pillar_id", "")
	if id == "" {
		return mcp.NewToolResultError("'pillar_id' is required"), nil
	}

	pillar, ok := t.index.Pillar(id)
	if !ok {
		return mcp.NewToolResultText(fmt.Sprintf(
			"Pillar '%s' not found. Available pillar IDs: %s", id, pillarIDs(t.index),
		)), nil
	}

	principles := t.index.PrinciplesOf(pillar.ID)
	measures := t.index.MeasuresOfPillar(pillar.ID)

	var b strings.Builder
	fmt.Fprintf(&b, "**Pillar: %s**\n", pillar.ID)
	fmt.Fprintf(&b, "**Name:** %s\n", pillar.Name)
	if pillar.Description != "" {
		fmt.Fprintf(&b, "**Description:** %s\n", pillar.Description)
	}
	fmt.Fprintf(&b, "\n**Principles:** %d\n", len(principles))
	fmt.Fprintf(&b, "**Measures:** %d\n\n", len(measures))

	if len(principles) > 0 {
		b.WriteString("**Principles in this pillar:**\n")
		for _, p := range principles {
			count := len(t.index.MeasuresOf(p.ID))
			fmt.Fprintf(&b, "- **%s**: %s (%d measures)\n", p.ID, p.Description, count)
		}
	}

	b.WriteString("\nUse `waf_get_principle(principle_id)` to explore specific principles.")

	return mcp.NewToolResultText(b.String()), nil
}
