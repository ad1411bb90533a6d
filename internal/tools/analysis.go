package tools

import (
	"context"
	"fmt"

	"github.com/lakewise/lakewise/internal/queries"
	"github.com/lakewise/lakewise/internal/warehouse"
	"github.com/mark3labs/mcp-go/mcp"
)

// AnalysisSpec binds one no-argument analysis tool to its catalog query
// and presentation formatter.
type AnalysisSpec struct {
	Name        string
	Description string
	QueryKey    string
	Format      warehouse.Formatter
}

// BuiltinAnalyses is the static registration table for the named analysis
// tools. The server registers one AnalysisTool per entry; the mapping is
// validated by tests, not discovered at runtime.
func BuiltinAnalyses() []AnalysisSpec {
	return []AnalysisSpec{
		{
			Name:        "waf_co_01_01_table_formats",
			Description: "CO-01-01 | Use performance-optimized data formats - Counts tables per storage format to find cost optimization opportunities",
			QueryKey:    "CO-01-01-table-formats",
			Format:      warehouse.FormatTableFormats,
		},
		{
			Name:        "waf_co_01_01_managed_tables",
			Description: "CO-01-01 | Use performance-optimized data formats - Shows the percentage distribution of table types across the data estate",
			QueryKey:    "CO-01-01-managed-tables",
			Format:      warehouse.FormatTableTypeDistribution,
		},
		{
			Name:        "waf_co_01_02_jobs_on_all_purpose_clusters",
			Description: "CO-01-02 | Use job compute for non-interactive workloads - Finds jobs running on all-purpose clusters that should move to job compute",
			QueryKey:    "CO-01-02",
			Format:      warehouse.FormatAllPurposeJobs,
		},
		{
			Name:        "waf_co_01_03_sql_vs_all_purpose",
			Description: "CO-01-03 | Use SQL warehouses for SQL workloads - Compares SQL vs all-purpose compute consumption over the last 30 days",
			QueryKey:    "CO-01-03",
			Format:      warehouse.FormatSQLVsAllPurpose,
		},
		{
			Name:        "waf_co_01_04_runtime_versions",
			Description: "CO-01-04 | Use up-to-date runtimes - Summarizes runtime versions across clusters to find upgrade opportunities",
			QueryKey:    "CO-01-04",
			Format:      warehouse.FormatRuntimeVersions,
		},
		{
			Name:        "waf_co_01_06_serverless",
			Description: "CO-01-06 | Use serverless services - Shows the percentage of serverless compute vs total compute",
			QueryKey:    "CO-01-06-serverless",
			Format:      warehouse.FormatServerlessPercent,
		},
		{
			Name:        "waf_co_01_06_serverless_sql",
			Description: "CO-01-06 | Use serverless services - Compares SQL serverless vs classic SQL compute costs",
			QueryKey:    "CO-01-06-sql",
			Format:      warehouse.FormatSQLComputeCosts,
		},
		{
			Name:        "waf_co_01_08_cluster_utilization",
			Description: "CO-01-08 | Choose the most efficient compute size - Reports p75 CPU and memory utilization across clusters",
			QueryKey:    "CO-01-08",
			Format:      warehouse.FormatClusterUtilization,
		},
		{
			Name:        "waf_co_02_01_autoscaling",
			Description: "CO-02-01 | Use autoscaling - Shows the percentage of clusters with autoscaling enabled",
			QueryKey:    "CO-02-01",
			Format:      warehouse.FormatAutoscalingPercent,
		},
		{
			Name:        "waf_co_02_02_auto_termination",
			Description: "CO-02-02 | Use auto-termination - Analyzes auto-termination settings across interactive clusters",
			QueryKey:    "CO-02-02",
			Format:      warehouse.FormatAutoTermination,
		},
		{
			Name:        "waf_co_03_01_billing_tables",
			Description: "CO-03-01 | Monitor the billing tables - Shows how frequently billing telemetry is actually read",
			QueryKey:    "CO-03-01",
			Format:      warehouse.FormatBillingTableAccess,
		},
		{
			Name:        "waf_co_03_02_tagging",
			Description: "CO-03-02 | Tag resources for cost attribution - Shows the distribution of tag counts across clusters",
			QueryKey:    "CO-03-02-tagging",
			Format:      warehouse.FormatTagDistribution,
		},
		{
			Name:        "waf_co_03_02_popular_tags",
			Description: "CO-03-02 | Tag resources for cost attribution - Lists the most popular cluster tags",
			QueryKey:    "CO-03-02-popular",
			Format:      warehouse.FormatPopularTags,
		},
	}
}

// AnalysisTool is one named, no-argument analysis bound to a catalog query.
type AnalysisTool struct {
	spec    AnalysisSpec
	catalog *queries.Catalog
	runner  QueryRunner
}

// NewAnalysisTool creates an AnalysisTool from its spec. runner may be nil
// when no warehouse is configured.
func NewAnalysisTool(spec AnalysisSpec, catalog *queries.Catalog, runner QueryRunner) *AnalysisTool {
	return &AnalysisTool{spec: spec, catalog: catalog, runner: runner}
}

// Definition returns the MCP tool definition for this analysis.
func (t *AnalysisTool) Definition() mcp.Tool {
	return mcp.NewTool(t.spec.Name,
		mcp.WithDescription(t.spec.Description),
	)
}

// Handle runs the bound query through the bound formatter.
func (t *AnalysisTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, ok := t.catalog.Get(t.spec.QueryKey)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("no query registered for %q", t.spec.QueryKey)), nil
	}
	if t.runner == nil {
		return mcp.NewToolResultText(noWarehouseMessage), nil
	}
	return mcp.NewToolResultText(t.runner.ExecuteFormatted(ctx, query, t.spec.Format)), nil
}
