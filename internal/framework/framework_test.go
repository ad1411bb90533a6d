package framework

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

// ─── Test fixtures ───────────────────────────────────────────────────────────

// fixtureFS builds an in-memory data source with the quirks the loader
// must tolerate: a placeholder row before the principles header, rows
// with blank primary keys, drifted column names, and mixed-case ids.
func fixtureFS() fstest.MapFS {
	return fstest.MapFS{
		pillarsFile: {Data: []byte(
			"pillar_id,pillar_name,pillar_description\n" +
				"co,Cost Optimization,Spend less for the same outcome.\n" +
				"RE,Reliability,Keep workloads running.\n" +
				"CO,Duplicate Cost,should be ignored\n",
		)},
		principlesFile: {Data: []byte(
			",,,\n" +
				"principle_id,pillar_id,pillar_name,principle_description\n" +
				"CO-01,CO,Cost Optimization,Choose optimal resources\n" +
				"CO-02,co,Cost Optimization,Dynamically allocate resources\n" +
				",CO,Cost Optimization,row without a principle id\n" +
				"RE-01,RE,Reliability,Design for failure\n",
		)},
		measuresFile: {Data: []byte(
			"pillar_id,principle_id,measure_id,best_practice,measure_databricks_capabilities,measure_details\n" +
				"CO,CO-01,co-01-01,Use optimized data formats,Delta Lake,Columnar formats reduce compute per query.\n" +
				"CO,CO-01,CO-01-02,Use job compute,Job clusters,Scheduled workloads belong on job compute.\n" +
				"CO,CO-02,CO-02-01,Use autoscaling,Cluster autoscaling,Capacity should follow demand.\n" +
				"RE,RE-01,RE-01-01,Use transactional tables,Delta Lake,ACID tables survive concurrent writers.\n" +
				"CO,CO-09,CO-09-01,Dangling principle reference,, references a principle that does not exist\n" +
				",,,\n",
		)},
		analysesFile: {Data: []byte(
			"pillar_id,principle_id,measure_id,analysis_id,measure_sql_code,measure_sql_description\n" +
				"CO,CO-01,CO-01-01,CO-01-01-FORMATS,SELECT fmt FROM tables,Table counts per format.\n" +
				"CO,CO-01,CO-01-01,CO-01-01-TYPES,SELECT typ FROM tables,Table type split.\n" +
				"CO,CO-02,CO-02-01,CO-02-01-AUTOSCALING,SELECT pct FROM clusters,Autoscaling share.\n",
		)},
	}
}

func loadFixture(t *testing.T) *Index {
	t.Helper()
	ix, err := Load(fixtureFS())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return ix
}

// ─── Loading ─────────────────────────────────────────────────────────────────

func TestLoadCounts(t *testing.T) {
	ix := loadFixture(t)
	stats := ix.Stats()

	if stats.Pillars != 2 {
		t.Errorf("pillars = %d, want 2 (duplicate id must be dropped)", stats.Pillars)
	}
	if stats.Principles != 3 {
		t.Errorf("principles = %d, want 3 (blank-id row must be skipped)", stats.Principles)
	}
	if stats.Measures != 5 {
		t.Errorf("measures = %d, want 5", stats.Measures)
	}
	if stats.Analyses != 3 {
		t.Errorf("analyses = %d, want 3", stats.Analyses)
	}
}

func TestLoadMissingFile(t *testing.T) {
	fsys := fixtureFS()
	delete(fsys, analysesFile)

	_, err := Load(fsys)
	if !errors.Is(err, ErrDataSource) {
		t.Fatalf("err = %v, want ErrDataSource", err)
	}
}

func TestLoadBlankRequiredField(t *testing.T) {
	fsys := fixtureFS()
	fsys[pillarsFile] = &fstest.MapFile{Data: []byte(
		"pillar_id,pillar_name,pillar_description\n" +
			"CO,,a pillar with no name\n",
	)}

	_, err := Load(fsys)
	if !errors.Is(err, ErrDataIntegrity) {
		t.Fatalf("err = %v, want ErrDataIntegrity", err)
	}
}

func TestLoadTrimsFields(t *testing.T) {
	fsys := fixtureFS()
	fsys[pillarsFile] = &fstest.MapFile{Data: []byte(
		"pillar_id,pillar_name,pillar_description\n" +
			"  co  ,  Cost Optimization  ,  padded  \n",
	)}

	ix, err := Load(fsys)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	p, ok := ix.Pillar("CO")
	if !ok {
		t.Fatal("padded pillar id not found after trim")
	}
	if p.Name != "Cost Optimization" || p.Description != "padded" {
		t.Errorf("fields not trimmed: %+v", p)
	}
}

func TestLoadHeaderAliases(t *testing.T) {
	fsys := fixtureFS()
	// Same measure data under the short header names.
	fsys[measuresFile] = &fstest.MapFile{Data: []byte(
		"pillar_id,principle_id,measure_id,best_practice,capabilities,details\n" +
			"CO,CO-01,CO-01-01,Use optimized data formats,Delta Lake,Columnar formats.\n",
	)}

	ix, err := Load(fsys)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	m, ok := ix.Measure("CO-01-01")
	if !ok {
		t.Fatal("measure not found")
	}
	if m.Capabilities != "Delta Lake" || m.Details != "Columnar formats." {
		t.Errorf("aliased columns not mapped: %+v", m)
	}
}

// ─── Lookups ─────────────────────────────────────────────────────────────────

func TestLookupsAreCaseInsensitive(t *testing.T) {
	ix := loadFixture(t)

	for _, p := range ix.Pillars() {
		upper, okU := ix.Pillar(strings.ToUpper(p.ID))
		lower, okL := ix.Pillar(strings.ToLower(p.ID))
		if !okU || !okL {
			t.Fatalf("pillar %s not found under case variants", p.ID)
		}
		if upper != p || lower != p {
			t.Errorf("case variants of %s returned different entities", p.ID)
		}
	}

	if _, ok := ix.Measure("co-01-01"); !ok {
		t.Error("lowercase measure lookup failed")
	}
	if _, ok := ix.Analysis("co-01-01-formats"); !ok {
		t.Error("lowercase analysis lookup failed")
	}
}

func TestLookupMissIsNotAnError(t *testing.T) {
	ix := loadFixture(t)
	if _, ok := ix.Pillar("XX"); ok {
		t.Error("unknown pillar reported as found")
	}
	if _, ok := ix.Analysis("NOPE"); ok {
		t.Error("unknown analysis reported as found")
	}
}

func TestAnalysisRoundTrip(t *testing.T) {
	ix := loadFixture(t)

	want := Analysis{
		PillarID:    "CO",
		PrincipleID: "CO-01",
		MeasureID:   "CO-01-01",
		ID:          "CO-01-01-FORMATS",
		QueryText:   "SELECT fmt FROM tables",
		Description: "Table counts per format.",
	}
	got, ok := ix.Analysis(want.ID)
	if !ok {
		t.Fatalf("analysis %s not found", want.ID)
	}
	if got != want {
		t.Errorf("analysis = %+v, want %+v", got, want)
	}
}

// ─── Listings and children ───────────────────────────────────────────────────

func TestPillarsSortedNoDuplicates(t *testing.T) {
	ix := loadFixture(t)
	pillars := ix.Pillars()

	seen := make(map[string]bool)
	for i, p := range pillars {
		if i > 0 && pillars[i-1].ID >= p.ID {
			t.Errorf("pillars not strictly ascending at %d: %s >= %s", i, pillars[i-1].ID, p.ID)
		}
		if seen[p.ID] {
			t.Errorf("duplicate pillar id %s", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestEveryMeasureListedUnderItsParents(t *testing.T) {
	ix := loadFixture(t)

	for _, m := range ix.Measures() {
		found := 0
		for _, got := range ix.MeasuresOf(m.PrincipleID) {
			if got == m {
				found++
			}
		}
		if found != 1 {
			t.Errorf("MeasuresOf(%s) contains %s %d times, want 1", m.PrincipleID, m.ID, found)
		}

		inPillar := false
		for _, got := range ix.MeasuresOfPillar(m.PillarID) {
			if got == m {
				inPillar = true
			}
		}
		if !inPillar {
			t.Errorf("MeasuresOfPillar(%s) missing %s", m.PillarID, m.ID)
		}
	}
}

func TestChildrenOfUnknownParentAreEmpty(t *testing.T) {
	ix := loadFixture(t)

	if got := ix.PrinciplesOf("XX"); len(got) != 0 {
		t.Errorf("PrinciplesOf(XX) = %d items, want 0", len(got))
	}
	if got := ix.MeasuresOf("XX-99"); len(got) != 0 {
		t.Errorf("MeasuresOf(XX-99) = %d items, want 0", len(got))
	}
	if got := ix.AnalysesOf("XX-99-99"); len(got) != 0 {
		t.Errorf("AnalysesOf(XX-99-99) = %d items, want 0", len(got))
	}
}

// A measure whose principle_id references no loaded principle is still
// reachable by direct lookup and under its (dangling) parent id. Foreign
// keys are trusted, not validated.
func TestDanglingForeignKeyPolicy(t *testing.T) {
	ix := loadFixture(t)

	m, ok := ix.Measure("CO-09-01")
	if !ok {
		t.Fatal("dangling measure not loaded")
	}
	if _, ok := ix.Principle(m.PrincipleID); ok {
		t.Fatalf("fixture broken: principle %s exists", m.PrincipleID)
	}
	got := ix.MeasuresOf(m.PrincipleID)
	if len(got) != 1 || got[0].ID != "CO-09-01" {
		t.Errorf("MeasuresOf(%s) = %v, want the dangling measure", m.PrincipleID, got)
	}
}

func TestMeasuresWithAnalyses(t *testing.T) {
	ix := loadFixture(t)
	withAnalyses := ix.MeasuresWithAnalyses()

	want := []string{"CO-01-01", "CO-02-01"}
	if len(withAnalyses) != len(want) {
		t.Fatalf("got %d measures, want %d", len(withAnalyses), len(want))
	}
	for i, id := range want {
		if withAnalyses[i].ID != id {
			t.Errorf("measure[%d] = %s, want %s", i, withAnalyses[i].ID, id)
		}
		if len(ix.AnalysesOf(id)) == 0 {
			t.Errorf("measure %s listed but has no analyses", id)
		}
	}
}

// ─── Search ──────────────────────────────────────────────────────────────────

func TestSearchMeasuresPredicate(t *testing.T) {
	ix := loadFixture(t)

	term := "delta"
	for _, m := range ix.SearchMeasures(term) {
		hay := strings.ToLower(m.ID + " " + m.BestPractice + " " + m.Capabilities + " " + m.Details)
		if !strings.Contains(hay, term) {
			t.Errorf("measure %s matched %q but contains no occurrence", m.ID, term)
		}
	}

	// "Delta Lake" appears in two measures' capabilities.
	if got := len(ix.SearchMeasures("DELTA LAKE")); got != 2 {
		t.Errorf("SearchMeasures(DELTA LAKE) = %d matches, want 2", got)
	}
}

func TestSearchSortedByID(t *testing.T) {
	ix := loadFixture(t)
	results := ix.SearchMeasures("co-0")
	for i := 1; i < len(results); i++ {
		if results[i-1].ID >= results[i].ID {
			t.Errorf("results not sorted: %s >= %s", results[i-1].ID, results[i].ID)
		}
	}
}

func TestEmptySearchTermMatchesNothing(t *testing.T) {
	ix := loadFixture(t)
	if got := ix.SearchMeasures(""); len(got) != 0 {
		t.Errorf("SearchMeasures(\"\") = %d matches, want 0", len(got))
	}
	if got := ix.SearchMeasures("   "); len(got) != 0 {
		t.Errorf("SearchMeasures(blank) = %d matches, want 0", len(got))
	}
	if got := ix.SearchPrinciples(""); len(got) != 0 {
		t.Errorf("SearchPrinciples(\"\") = %d matches, want 0", len(got))
	}
}

func TestSearchPrinciples(t *testing.T) {
	ix := loadFixture(t)
	results := ix.SearchPrinciples("failure")
	if len(results) != 1 || results[0].ID != "RE-01" {
		t.Errorf("SearchPrinciples(failure) = %v, want [RE-01]", results)
	}
}

// ─── Embedded data ───────────────────────────────────────────────────────────

func TestLoadEmbedded(t *testing.T) {
	ix, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded: %v", err)
	}

	stats := ix.Stats()
	if stats.Pillars != 8 {
		t.Errorf("embedded pillars = %d, want 8", stats.Pillars)
	}
	if stats.Analyses != 13 {
		t.Errorf("embedded analyses = %d, want 13", stats.Analyses)
	}

	// Every embedded analysis must reference a loaded measure and carry
	// runnable query text.
	for _, m := range ix.MeasuresWithAnalyses() {
		for _, a := range ix.AnalysesOf(m.ID) {
			if a.QueryText == "" {
				t.Errorf("analysis %s has empty query text", a.ID)
			}
			if _, ok := ix.Measure(a.MeasureID); !ok {
				t.Errorf("analysis %s references unknown measure %s", a.ID, a.MeasureID)
			}
		}
	}

	if _, ok := ix.Analysis("CO-01-01-TABLE-FORMATS"); !ok {
		t.Error("embedded analysis CO-01-01-TABLE-FORMATS missing")
	}
	// The stray export row in principles.csv must not become a principle.
	for _, p := range ix.Principles() {
		if p.ID == "" {
			t.Error("blank principle id survived ingest")
		}
	}
}
