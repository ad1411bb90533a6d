package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/lakewise/lakewise/internal/framework"
	"github.com/mark3labs/mcp-go/mcp"
)

// ListPillarsTool handles the waf_list_pillars MCP tool.
type ListPillarsTool struct {
	index *framework.Index
}

// NewListPillarsTool creates a ListPillarsTool.
func NewListPillarsTool(index *framework.Index) *ListPillarsTool {
	return &ListPillarsTool{index: index}
}

// Definition returns the MCP tool definition for waf_list_pillars.
func (t *ListPillarsTool) Definition() mcp.Tool {
	return mcp.NewTool("waf_list_pillars",
		mcp.WithDescription(
			"List all well-architected framework pillars with their principle and measure counts.",
		),
	)
}

// Handle processes the waf_list_pillars tool call.
func (t *ListPillarsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats := t.index.Stats()

	var b strings.Builder
	b.WriteString("**Lakehouse Well-Architected Framework Pillars:**\n\n")

	for _, pillar := range t.index.Pillars() {
		principles := t.index.PrinciplesOf(pillar.ID)
		measures := t.index.MeasuresOfPillar(pillar.ID)
		fmt.Fprintf(&b, "**%s** - %s\n", pillar.ID, pillar.Name)
		fmt.Fprintf(&b, "  - %d principles, %d measures\n\n", len(principles), len(measures))
	}

	fmt.Fprintf(&b, "**Total:** %d pillars, %d principles, %d measures, %d analyses\n\n",
		stats.Pillars, stats.Principles, stats.Measures, stats.Analyses)
	b.WriteString("Use `waf_get_pillar(pillar_id)` to explore any pillar in detail.")

	return mcp.NewToolResultText(b.String()), nil
}
