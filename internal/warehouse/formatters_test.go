package warehouse

import (
	"fmt"
	"strings"
	"testing"
)

func TestFormatTableFormats(t *testing.T) {
	rows := [][]any{
		{"DELTA", int64(150)},
		{"PARQUET", int64(75)},
	}
	got := FormatTableFormats(rows, nil)
	want := "Table formats:\nDELTA: 150 tables\nPARQUET: 75 tables"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatTableTypeDistribution(t *testing.T) {
	got := FormatTableTypeDistribution([][]any{{"MANAGED", float64(82)}}, nil)
	if got != "Table types distribution:\nMANAGED: 82%" {
		t.Errorf("got %q", got)
	}
}

func TestFormatSQLVsAllPurpose(t *testing.T) {
	rows := [][]any{
		{"SQL", float64(1204.5)},
		{"ALL_PURPOSE", float64(301.25)},
	}
	got := FormatSQLVsAllPurpose(rows, nil)
	if !strings.Contains(got, "SQL: 1204.50 DBU") || !strings.Contains(got, "ALL_PURPOSE: 301.25 DBU") {
		t.Errorf("got %q", got)
	}
}

func TestFormatServerlessPercent(t *testing.T) {
	got := FormatServerlessPercent([][]any{{float64(37.219)}}, nil)
	if got != "Serverless compute usage: 37.22% of total compute (last 28 days)" {
		t.Errorf("got %q", got)
	}
}

func TestFormatClusterUtilization(t *testing.T) {
	got := FormatClusterUtilization([][]any{{float64(61.5), float64(48.2)}}, nil)
	if !strings.Contains(got, "CPU: 61.50%") || !strings.Contains(got, "Memory: 48.20%") {
		t.Errorf("got %q", got)
	}
}

func TestFormatAutoTerminationWithNulls(t *testing.T) {
	rows := [][]any{{nil, nil, int64(4), int64(12), float64(25)}}
	got := FormatAutoTermination(rows, nil)
	if !strings.Contains(got, "75th percentile auto-termination: N/A minutes") {
		t.Errorf("NULL p75 not rendered as N/A: %q", got)
	}
	if !strings.Contains(got, "Clusters without auto-termination: 4 (25.0%)") {
		t.Errorf("got %q", got)
	}
	if !strings.Contains(got, "Clusters with auto-termination: 12") {
		t.Errorf("got %q", got)
	}
}

func TestFormatBillingTableAccessCapsAtTenDays(t *testing.T) {
	rows := make([][]any, 14)
	for i := range rows {
		rows[i] = []any{fmt.Sprintf("2025-07-%02d", i+1), int64(i)}
	}
	got := FormatBillingTableAccess(rows, nil)
	if n := strings.Count(got, "reads"); n != 10 {
		t.Errorf("printed %d days, want 10:\n%s", n, got)
	}
	if !strings.HasSuffix(got, "... and 4 more days") {
		t.Errorf("missing elision suffix: %q", got)
	}
}

func TestFormatPopularTags(t *testing.T) {
	got := FormatPopularTags([][]any{{"team", float64(74.31)}}, nil)
	if got != "Most popular cluster tags:\nteam: 74.3% of clusters" {
		t.Errorf("got %q", got)
	}
}

func TestCellAccessorsAbsorbDriverTypes(t *testing.T) {
	row := []any{int32(7), float32(2.5), nil, []byte("bytes")}

	if got := integer(row, 0); got != 7 {
		t.Errorf("integer(int32) = %d", got)
	}
	if got := float(row, 1); got != 2.5 {
		t.Errorf("float(float32) = %v", got)
	}
	if got := str(row, 2); got != "Unknown" {
		t.Errorf("str(nil) = %q", got)
	}
	if got := str(row, 3); got != "bytes" {
		t.Errorf("str([]byte) = %q", got)
	}
	if got := str(row, 99); got != "Unknown" {
		t.Errorf("str(out of range) = %q", got)
	}
	if got := integer(row, 1); got != 2 {
		t.Errorf("integer(float32 2.5) = %d, want 2", got)
	}
}
