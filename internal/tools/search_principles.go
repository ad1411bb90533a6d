package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/lakewise/lakewise/internal/framework"
	"github.com/mark3labs/mcp-go/mcp"
)

// SearchPrinciplesTool handles the waf_search_principles MCP tool.
type SearchPrinciplesTool struct {
	index *framework.Index
}

// NewSearchPrinciplesTool creates a SearchPrinciplesTool.
func NewSearchPrinciplesTool(index *framework.Index) *SearchPrinciplesTool {
	return &SearchPrinciplesTool{index: index}
}

// Definition returns the MCP tool definition for waf_search_principles.
func (t *SearchPrinciplesTool) Definition() mcp.Tool {
	return mcp.NewTool("waf_search_principles",
		mcp.WithDescription(
			"Search well-architected principles by term — matches principle ID and description.",
		),
		mcp.WithString("search_term",
			mcp.Required(),
			mcp.Description("The term to search for (case-insensitive substring)"),
		),
	)
}

// Handle processes the waf_search_principles tool call.
func (t *SearchPrinciplesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	term := req.GetString("search_term", "")
	if strings.TrimSpace(term) == "" {
		return mcp.NewToolResultError("'search_term' is required"), nil
	}

	matches := t.index.SearchPrinciples(term)
	if len(matches) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf(
			"No principles found containing '%s'. Use `waf_list_principles()` to see all principles.", term,
		)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Principles matching '%s' (%d found):**\n\n", term, len(matches))
	for _, p := range matches {
		count := len(t.index.MeasuresOf(p.ID))
		fmt.Fprintf(&b, "- **%s** (%s): %s (%d measures)\n", p.ID, p.PillarName, p.Description, count)
	}
	b.WriteString("\nUse `waf_get_principle(principle_id)` to explore any principle in detail.")

	return mcp.NewToolResultText(b.String()), nil
}
