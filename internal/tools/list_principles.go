package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/lakewise/lakewise/internal/framework"
	"github.com/mark3labs/mcp-go/mcp"
)

// ListPrinciplesTool handles the waf_list_principles MCP tool.
type ListPrinciplesTool struct {
	index *framework.Index
}

// NewListPrinciplesTool creates a ListPrinciplesTool.
func NewListPrinciplesTool(index *framework.Index) *ListPrinciplesTool {
	return &ListPrinciplesTool{index: index}
}

// Definition returns the MCP tool definition for waf_list_principles.
func (t *ListPrinciplesTool) Definition() mcp.Tool {
	return mcp.NewTool("waf_list_principles",
		mcp.WithDescription(
			"List all well-architected framework principles, grouped by pillar.",
		),
	)
}

// Handle processes the waf_list_principles tool call.
func (t *ListPrinciplesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var b strings.Builder
	b.WriteString("**Principles by Pillar:**\n\n")

	for _, pillar := range t.index.Pillars() {
		principles := t.index.PrinciplesOf(pillar.ID)
		if len(principles) == 0 {
			continue
		}
		fmt.Fprintf(&b, "**%s:**\n", pillar.Name)
		for _, p := range principles {
			count := len(t.index.MeasuresOf(p.ID))
			fmt.Fprintf(&b, "  - **%s**: %s (%d measures)\n", p.ID, p.Description, count)
		}
		b.WriteString("\n")
	}

	b.WriteString("Use `waf_get_principle(principle_id)` to explore any principle in detail.")

	return mcp.NewToolResultText(b.String()), nil
}
