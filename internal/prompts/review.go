// Package prompts implements MCP prompt handlers.
//
// MCP prompts are user-triggered workflows (like slash commands) that
// instruct the AI to execute a specific sequence. Unlike tools (which
// the AI calls), prompts are initiated by the user.
package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// ReviewPrompt handles the waf-review MCP prompt. It guides the AI
// through a well-architected review of one pillar using the framework
// tools and the warehouse analyses.
type ReviewPrompt struct{}

// NewReviewPrompt creates a ReviewPrompt.
func NewReviewPrompt() *ReviewPrompt {
	return &ReviewPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *ReviewPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("waf-review",
		mcp.WithPromptDescription(
			"Run a well-architected review of the lakehouse for one pillar: "+
				"walk the pillar's principles and measures, execute the available "+
				"analyses against the telemetry warehouse, and summarize findings.",
		),
		mcp.WithArgument("pillar_id",
			mcp.ArgumentDescription("Pillar to review (e.g. 'CO' for Cost Optimization). Default: CO"),
		),
	)
}

// Handle processes the waf-review prompt request.
func (p *ReviewPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	pillarID := "CO"
	if args := req.Params.Arguments; args != nil {
		if id, ok := args["pillar_id"]; ok && id != "" {
			pillarID = id
		}
	}

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Well-architected review of pillar %s", pillarID),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"Please run a well-architected review of my lakehouse for pillar '%s'.\n\n"+
						"1. Call `waf_get_pillar` with pillar_id='%s' to get the principles and measures\n"+
						"2. Call `waf_list_analyses` to see which measures have executable analyses\n"+
						"3. Run every analysis belonging to this pillar (the dedicated no-argument "+
						"tools where available, `waf_run_analysis` otherwise)\n"+
						"4. For each analysis, compare the result against the measure's best practice "+
						"(use `waf_get_measure` for the implementation details)\n"+
						"5. Finish with a prioritized summary: what looks healthy, what needs attention, "+
						"and the concrete next steps, referencing measure IDs\n\n"+
						"If an analysis fails because the warehouse is unreachable, note it and continue "+
						"with the remaining ones.",
					pillarID, pillarID,
				)),
			},
		},
	}, nil
}
