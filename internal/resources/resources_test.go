package resources

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/lakewise/lakewise/internal/framework"
	"github.com/mark3labs/mcp-go/mcp"
)

func TestHandleStats(t *testing.T) {
	ix, err := framework.LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded: %v", err)
	}
	h := NewHandler(ix)

	var req mcp.ReadResourceRequest
	req.Params.URI = "waf://framework/stats"

	contents, err := h.HandleStats(context.Background(), req)
	if err != nil {
		t.Fatalf("HandleStats: %v", err)
	}
	if len(contents) != 1 {
		t.Fatalf("got %d contents, want 1", len(contents))
	}

	tc, ok := contents[0].(mcp.TextResourceContents)
	if !ok {
		t.Fatalf("contents[0] is %T, want TextResourceContents", contents[0])
	}
	if tc.URI != "waf://framework/stats" {
		t.Errorf("URI = %q", tc.URI)
	}
	if tc.MIMEType != "application/json" {
		t.Errorf("MIMEType = %q", tc.MIMEType)
	}

	var payload struct {
		Pillars    int `json:"pillar_count"`
		Principles int `json:"principle_count"`
		Measures   int `json:"measure_count"`
		Analyses   int `json:"analysis_count"`
	}
	if err := json.Unmarshal([]byte(tc.Text), &payload); err != nil {
		t.Fatalf("payload is not JSON: %v", err)
	}
	stats := ix.Stats()
	if payload.Pillars != stats.Pillars || payload.Analyses != stats.Analyses {
		t.Errorf("payload %+v does not match index stats %+v", payload, stats)
	}
}
