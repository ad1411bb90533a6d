// Package tools implements the MCP tool handlers for the well-architected
// framework catalog and the warehouse analyses.
//
// Each tool is a struct with its dependencies injected via constructor,
// a Definition() returning the mcp.Tool schema, and a Handle() processing
// the request. Lookup misses and backend failures are returned as text —
// a tool handler never surfaces a Go error to the MCP transport for a
// domain-level failure.
package tools

import (
	"context"
	"strings"

	"github.com/lakewise/lakewise/internal/framework"
	"github.com/lakewise/lakewise/internal/warehouse"
)

// QueryRunner is the slice of the warehouse executor the tools need.
// *warehouse.Executor satisfies it; tests substitute a stub.
type QueryRunner interface {
	ExecuteFormatted(ctx context.Context, query string, format warehouse.Formatter) string
}

// noWarehouseMessage is returned by analysis tools when no warehouse DSN
// was configured. Browse tools keep working without one.
const noWarehouseMessage = "No analytics warehouse is configured. " +
	"Set LAKEWISE_WAREHOUSE_DSN (and LAKEWISE_WAREHOUSE_TOKEN if required) and restart the server."

// pillarIDs renders the ids of all loaded pillars as a comma-separated
// list, used in not-found hints.
func pillarIDs(ix *framework.Index) string {
	pillars := ix.Pillars()
	ids := make([]string, len(pillars))
	for i, p := range pillars {
		ids[i] = p.ID
	}
	return strings.Join(ids, ", ")
}
