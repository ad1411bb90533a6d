// Package resources implements MCP resource handlers.
//
// Resources provide read-only data that the host can consume for context.
// They use URI-based addressing (waf://...) following MCP conventions.
package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lakewise/lakewise/internal/framework"
	"github.com/mark3labs/mcp-go/mcp"
)

// Handler manages the framework resource endpoints.
type Handler struct {
	index *framework.Index
}

// NewHandler creates a resource Handler over the loaded framework index.
func NewHandler(index *framework.Index) *Handler {
	return &Handler{index: index}
}

// StatsResource returns the MCP resource definition for framework statistics.
func (h *Handler) StatsResource() mcp.Resource {
	return mcp.NewResource(
		"waf://framework/stats",
		"Well-Architected Framework Statistics",
		mcp.WithResourceDescription("Counts of loaded pillars, principles, measures, and analyses"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleStats returns the framework statistics as JSON.
func (h *Handler) HandleStats(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	stats := h.index.Stats()

	payload := struct {
		Pillars    int `json:"pillar_count"`
		Principles int `json:"principle_count"`
		Measures   int `json:"measure_count"`
		Analyses   int `json:"analysis_count"`
	}{stats.Pillars, stats.Principles, stats.Measures, stats.Analyses}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling stats: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
