package warehouse

import (
	"fmt"
	"strings"
)

// Domain formatters: one per diagnostic analysis, each turning raw rows
// into a short summary for the agent. They are presentation policies only —
// the executor does not know which one it is running.

// FormatTableFormats summarizes table counts per storage format.
func FormatTableFormats(rows [][]any, _ []string) string {
	var b strings.Builder
	b.WriteString("Table formats:\n")
	for _, row := range rows {
		fmt.Fprintf(&b, "%s: %d tables\n", str(row, 0), integer(row, 1))
	}
	return strings.TrimSpace(b.String())
}

// FormatTableTypeDistribution summarizes the percentage split of table types.
func FormatTableTypeDistribution(rows [][]any, _ []string) string {
	var b strings.Builder
	b.WriteString("Table types distribution:\n")
	for _, row := range rows {
		fmt.Fprintf(&b, "%s: %d%%\n", str(row, 0), integer(row, 1))
	}
	return strings.TrimSpace(b.String())
}

// FormatAllPurposeJobs lists jobs found running on all-purpose clusters.
func FormatAllPurposeJobs(rows [][]any, _ []string) string {
	var b strings.Builder
	b.WriteString("Jobs running on all-purpose clusters (last 30 days):\n")
	for _, row := range rows {
		fmt.Fprintf(&b, "Job %s on cluster '%s' (ID: %s) - Owner: %s\n",
			str(row, 1), str(row, 3), str(row, 2), str(row, 4))
	}
	return strings.TrimSpace(b.String())
}

// FormatSQLVsAllPurpose compares SQL and all-purpose compute consumption.
func FormatSQLVsAllPurpose(rows [][]any, _ []string) string {
	var b strings.Builder
	b.WriteString("SQL vs All Purpose compute usage (last 30 days):\n")
	for _, row := range rows {
		fmt.Fprintf(&b, "%s: %.2f DBU\n", str(row, 0), float(row, 1))
	}
	return strings.TrimSpace(b.String())
}

// FormatRuntimeVersions summarizes runtime versions across clusters.
func FormatRuntimeVersions(rows [][]any, _ []string) string {
	var b strings.Builder
	b.WriteString("Runtime versions in use:\n")
	for _, row := range rows {
		fmt.Fprintf(&b, "DBR %s: %d clusters\n", str(row, 0), integer(row, 1))
	}
	return strings.TrimSpace(b.String())
}

// FormatServerlessPercent reports serverless share of total compute.
func FormatServerlessPercent(rows [][]any, _ []string) string {
	return fmt.Sprintf("Serverless compute usage: %.2f%% of total compute (last 28 days)",
		float(rows[0], 0))
}

// FormatSQLComputeCosts summarizes SQL compute list cost by warehouse type.
func FormatSQLComputeCosts(rows [][]any, _ []string) string {
	var b strings.Builder
	b.WriteString("SQL compute costs by type (last 30 days):\n")
	for _, row := range rows {
		fmt.Fprintf(&b, "%s: $%.2f\n", str(row, 0), float(row, 1))
	}
	return strings.TrimSpace(b.String())
}

// FormatClusterUtilization reports p75 CPU and memory utilization.
func FormatClusterUtilization(rows [][]any, _ []string) string {
	return fmt.Sprintf("Cluster utilization (75th percentile, last 28 days):\nCPU: %.2f%%\nMemory: %.2f%%",
		float(rows[0], 0), float(rows[0], 1))
}

// FormatAutoscalingPercent reports the share of clusters with autoscaling.
func FormatAutoscalingPercent(rows [][]any, _ []string) string {
	return fmt.Sprintf("Clusters with autoscaling enabled: %.2f%%", float(rows[0], 0))
}

// FormatAutoTermination summarizes auto-termination configuration.
func FormatAutoTermination(rows [][]any, _ []string) string {
	row := rows[0]
	p75 := "N/A"
	if row[0] != nil {
		p75 = cellText(row[0])
	}
	max := "N/A"
	if row[1] != nil {
		max = cellText(row[1])
	}
	var b strings.Builder
	b.WriteString("Auto-termination analysis:\n")
	fmt.Fprintf(&b, "75th percentile auto-termination: %s minutes\n", p75)
	fmt.Fprintf(&b, "Max auto-termination: %s minutes\n", max)
	fmt.Fprintf(&b, "Clusters without auto-termination: %d (%.1f%%)\n", integer(row, 2), float(row, 4))
	fmt.Fprintf(&b, "Clusters with auto-termination: %d", integer(row, 3))
	return b.String()
}

// FormatBillingTableAccess reports a daily time series of billing table
// reads, capped at the first ten days for readability.
func FormatBillingTableAccess(rows [][]any, _ []string) string {
	var b strings.Builder
	b.WriteString("Daily billing table access (last 90 days):\n")
	shown := rows
	if len(shown) > 10 {
		shown = shown[:10]
	}
	for _, row := range shown {
		fmt.Fprintf(&b, "%s: %d reads\n", str(row, 0), integer(row, 1))
	}
	if len(rows) > 10 {
		fmt.Fprintf(&b, "... and %d more days", len(rows)-10)
	}
	return strings.TrimSpace(b.String())
}

// FormatTagDistribution summarizes how many tags clusters carry.
func FormatTagDistribution(rows [][]any, _ []string) string {
	var b strings.Builder
	b.WriteString("Cluster tagging distribution:\n")
	for _, row := range rows {
		fmt.Fprintf(&b, "%d tags: %d clusters\n", integer(row, 0), integer(row, 1))
	}
	return strings.TrimSpace(b.String())
}

// FormatPopularTags lists the ten most used cluster tags.
func FormatPopularTags(rows [][]any, _ []string) string {
	var b strings.Builder
	b.WriteString("Most popular cluster tags:\n")
	shown := rows
	if len(shown) > 10 {
		shown = shown[:10]
	}
	for _, row := range shown {
		fmt.Fprintf(&b, "%s: %.1f%% of clusters\n", str(row, 0), float(row, 1))
	}
	return strings.TrimSpace(b.String())
}

// ─── Cell accessors ──────────────────────────────────────────────────────────
//
// Telemetry rows arrive as []any with driver-dependent numeric types, and
// any cell may be NULL. These accessors absorb both.

// str returns the cell as a string, "Unknown" when NULL or out of range.
func str(row []any, i int) string {
	if i >= len(row) || row[i] == nil {
		return "Unknown"
	}
	return cellText(row[i])
}

// integer returns the cell as an int64, 0 when NULL or non-numeric.
func integer(row []any, i int) int64 {
	if i >= len(row) || row[i] == nil {
		return 0
	}
	switch v := row[i].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case float64:
		return int64(v)
	case float32:
		return int64(v)
	default:
		return 0
	}
}

// float returns the cell as a float64, 0 when NULL or non-numeric.
func float(row []any, i int) float64 {
	if i >= len(row) || row[i] == nil {
		return 0
	}
	switch v := row[i].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int64:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	default:
		return 0
	}
}
