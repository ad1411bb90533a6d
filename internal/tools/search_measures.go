package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/lakewise/lakewise/internal/framework"
	"github.com/mark3labs/mcp-go/mcp"
)

// maxSearchResults caps how many matches a search tool renders before
// eliding the rest.
const maxSearchResults = 15

// SearchMeasuresTool handles the waf_search_measures MCP tool.
type SearchMeasuresTool struct {
	index *framework.Index
}

// NewSearchMeasuresTool creates a SearchMeasuresTool.
func NewSearchMeasuresTool(index *framework.Index) *SearchMeasuresTool {
	return &SearchMeasuresTool{index: index}
}

// Definition returns the MCP tool definition for waf_search_measures.
func (t *SearchMeasuresTool) Definition() mcp.Tool {
	return mcp.NewTool("waf_search_measures",
		mcp.WithDescription(
			"Search well-architected measures by term — matches measure ID, best practice, "+
				"platform capabilities, and implementation details.",
		),
		mcp.WithString("search_term",
			mcp.Required(),
			mcp.Description("The term to search for (case-insensitive substring)"),
		),
	)
}

// Handle processes the waf_search_measures tool call.
func (t *SearchMeasuresTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	term := req.GetString("search_term", "")
	if strings.TrimSpace(term) == "" {
		return mcp.NewToolResultError("'search_term' is required"), nil
	}

	matches := t.index.SearchMeasures(term)
	if len(matches) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf(
			"No measures found containing '%s'. Use `waf_list_pillars()` to explore available content.", term,
		)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Measures matching '%s' (%d found):**\n\n", term, len(matches))

	shown := matches
	if len(shown) > maxSearchResults {
		shown = shown[:maxSearchResults]
	}
	for _, m := range shown {
		fmt.Fprintf(&b, "**%s** - %s\n", m.ID, m.BestPractice)
		if m.Capabilities != "" {
			fmt.Fprintf(&b, "  *Capabilities: %s*\n", m.Capabilities)
		}
		b.WriteString("\n")
	}

	if elided := len(matches) - maxSearchResults; elided > 0 {
		fmt.Fprintf(&b, "... and %d more results.\n\n", elided)
	}

	b.WriteString("Use `waf_get_measure(measure_id)` for complete details on any measure.")

	return mcp.NewToolResultText(b.String()), nil
}
