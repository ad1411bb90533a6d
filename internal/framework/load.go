package framework

import (
	"encoding/csv"
	"fmt"
	"io"
	"io/fs"
	"sort"
	"strings"
)

// Resource file names expected inside the data filesystem.
const (
	pillarsFile    = "pillars.csv"
	principlesFile = "principles.csv"
	measuresFile   = "measures.csv"
	analysesFile   = "analyses.csv"
)

// Column aliases tolerated in the source headers. The upstream spreadsheet
// exports have drifted over time (measure_databricks_capabilities vs
// capabilities, measure_sql_code vs sql_code), so headers are matched
// through this table after lowercasing and trimming.
var columnAliases = map[string]string{
	"measure_databricks_capabilities": "capabilities",
	"databricks_capabilities":         "capabilities",
	"measure_capabilities":            "capabilities",
	"measure_details":                 "details",
	"measure_sql_code":                "query_text",
	"sql_code":                        "query_text",
	"measure_sql_description":         "query_description",
	"sql_description":                 "query_description",
}

// Load parses the four CSV resources from fsys and builds the index.
// It returns ErrDataSource when a file is missing or malformed and
// ErrDataIntegrity when a kept row is missing a required field. Rows
// missing their kind's own primary key are skipped silently.
func Load(fsys fs.FS) (*Index, error) {
	ix := &Index{
		pillars:             make(map[string]Pillar),
		principles:          make(map[string]Principle),
		measures:            make(map[string]Measure),
		analyses:            make(map[string]Analysis),
		principlesByPillar:  make(map[string][]string),
		measuresByPrinciple: make(map[string][]string),
		measuresByPillar:    make(map[string][]string),
		analysesByMeasure:   make(map[string][]string),
	}

	if err := ix.loadPillars(fsys); err != nil {
		return nil, err
	}
	if err := ix.loadPrinciples(fsys); err != nil {
		return nil, err
	}
	if err := ix.loadMeasures(fsys); err != nil {
		return nil, err
	}
	if err := ix.loadAnalyses(fsys); err != nil {
		return nil, err
	}

	// Reverse index consistency: child lists are sorted once here and
	// never mutated again.
	for _, m := range []map[string][]string{
		ix.principlesByPillar,
		ix.measuresByPrinciple,
		ix.measuresByPillar,
		ix.analysesByMeasure,
	} {
		for _, ids := range m {
			sort.Strings(ids)
		}
	}

	return ix, nil
}

func (ix *Index) loadPillars(fsys fs.FS) error {
	rows, err := readTable(fsys, pillarsFile)
	if err != nil {
		return err
	}
	for _, row := range rows {
		id := key(row["pillar_id"])
		if id == "" {
			continue
		}
		if _, dup := ix.pillars[id]; dup {
			continue // first occurrence wins
		}
		name := strings.TrimSpace(row["pillar_name"])
		if name == "" {
			return fmt.Errorf("%w: pillar %s has no name", ErrDataIntegrity, id)
		}
		ix.pillars[id] = Pillar{
			ID:          id,
			Name:        name,
			Description: strings.TrimSpace(row["pillar_description"]),
		}
	}
	return nil
}

func (ix *Index) loadPrinciples(fsys fs.FS) error {
	rows, err := readTable(fsys, principlesFile)
	if err != nil {
		return err
	}
	for _, row := range rows {
		id := key(row["principle_id"])
		if id == "" {
			continue
		}
		if _, dup := ix.principles[id]; dup {
			continue
		}
		desc := strings.TrimSpace(row["principle_description"])
		if desc == "" {
			return fmt.Errorf("%w: principle %s has no description", ErrDataIntegrity, id)
		}
		pillarID := key(row["pillar_id"])
		ix.principles[id] = Principle{
			ID:          id,
			PillarID:    pillarID,
			PillarName:  strings.TrimSpace(row["pillar_name"]),
			Description: desc,
		}
		ix.principlesByPillar[pillarID] = append(ix.principlesByPillar[pillarID], id)
	}
	return nil
}

func (ix *Index) loadMeasures(fsys fs.FS) error {
	rows, err := readTable(fsys, measuresFile)
	if err != nil {
		return err
	}
	for _, row := range rows {
		id := key(row["measure_id"])
		if id == "" {
			continue
		}
		if _, dup := ix.measures[id]; dup {
			continue
		}
		practice := strings.TrimSpace(row["best_practice"])
		if practice == "" {
			return fmt.Errorf("%w: measure %s has no best practice", ErrDataIntegrity, id)
		}
		pillarID := key(row["pillar_id"])
		principleID := key(row["principle_id"])
		ix.measures[id] = Measure{
			PillarID:     pillarID,
			PrincipleID:  principleID,
			ID:           id,
			BestPractice: practice,
			Capabilities: strings.TrimSpace(row["capabilities"]),
			Details:      strings.TrimSpace(row["details"]),
		}
		ix.measuresByPrinciple[principleID] = append(ix.measuresByPrinciple[principleID], id)
		ix.measuresByPillar[pillarID] = append(ix.measuresByPillar[pillarID], id)
	}
	return nil
}

func (ix *Index) loadAnalyses(fsys fs.FS) error {
	rows, err := readTable(fsys, analysesFile)
	if err != nil {
		return err
	}
	for _, row := range rows {
		id := key(row["analysis_id"])
		if id == "" {
			continue
		}
		if _, dup := ix.analyses[id]; dup {
			continue
		}
		query := strings.TrimSpace(row["query_text"])
		if query == "" {
			return fmt.Errorf("%w: analysis %s has no query text", ErrDataIntegrity, id)
		}
		measureID := key(row["measure_id"])
		ix.analyses[id] = Analysis{
			PillarID:    key(row["pillar_id"]),
			PrincipleID: key(row["principle_id"]),
			MeasureID:   measureID,
			ID:          id,
			QueryText:   query,
			Description: strings.TrimSpace(row["query_description"]),
		}
		ix.analysesByMeasure[measureID] = append(ix.analysesByMeasure[measureID], id)
	}
	return nil
}

// readTable reads a CSV file into one map per row, keyed by normalized
// column name. A leading placeholder row (all cells blank, as emitted by
// some spreadsheet exports before the real header) is discarded.
func readTable(fsys fs.FS, name string) ([]map[string]string, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDataSource, name, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // ragged rows are handled per-cell below

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDataSource, name, err)
	}
	if blankRecord(header) {
		header, err = r.Read()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrDataSource, name, err)
		}
	}
	cols := make([]string, len(header))
	for i, h := range header {
		cols[i] = normalizeColumn(h)
	}

	var rows []map[string]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrDataSource, name, err)
		}
		if blankRecord(record) {
			continue
		}
		row := make(map[string]string, len(cols))
		for i, col := range cols {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// normalizeColumn lowercases, trims, and resolves known header aliases.
func normalizeColumn(h string) string {
	c := strings.ToLower(strings.TrimSpace(h))
	if canonical, ok := columnAliases[c]; ok {
		return canonical
	}
	return c
}

// blankRecord reports whether every cell in the record is empty after trimming.
func blankRecord(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
