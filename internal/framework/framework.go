// Package framework implements the in-memory index over the lakehouse
// Well-Architected Framework reference data.
//
// The framework is a four-level hierarchy — Pillars contain Principles,
// Principles contain Measures, and a Measure owns zero or more executable
// Analyses. The data ships with the binary as CSV resources, is parsed once
// at startup, and is immutable afterwards: every read operation is safe for
// concurrent use without locking.
package framework

import (
	"errors"
	"sort"
	"strings"
)

// Sentinel errors returned by Load. Both are fatal at startup: a server
// without its reference data must not serve any request.
var (
	// ErrDataSource indicates a required CSV resource is missing or unreadable.
	ErrDataSource = errors.New("framework: data source unavailable")

	// ErrDataIntegrity indicates a required field is blank on a row that is
	// not being skipped for a missing primary key.
	ErrDataIntegrity = errors.New("framework: data integrity violation")
)

// Pillar is a top-level architectural category (e.g. CO — Cost Optimization).
type Pillar struct {
	ID          string
	Name        string
	Description string
}

// Principle is an architectural guideline within a pillar.
type Principle struct {
	ID          string
	PillarID    string
	PillarName  string
	Description string
}

// Measure is a concrete best practice under a principle.
type Measure struct {
	PillarID     string
	PrincipleID  string
	ID           string
	BestPractice string
	Capabilities string
	Details      string
}

// Analysis is an executable diagnostic check tied to one measure.
type Analysis struct {
	PillarID    string
	PrincipleID string
	MeasureID   string
	ID          string
	QueryText   string
	Description string
}

// Stats summarizes the loaded hierarchy.
type Stats struct {
	Pillars    int
	Principles int
	Measures   int
	Analyses   int
}

// Index holds the loaded framework hierarchy with forward and reverse
// lookup maps. All keys are normalized to uppercase at load time; lookups
// normalize their arguments the same way. Index is read-only after Load.
type Index struct {
	pillars    map[string]Pillar
	principles map[string]Principle
	measures   map[string]Measure
	analyses   map[string]Analysis

	principlesByPillar  map[string][]string
	measuresByPrinciple map[string][]string
	measuresByPillar    map[string][]string
	analysesByMeasure   map[string][]string
}

// key normalizes an identifier for map access.
func key(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// Pillar returns the pillar with the given id. Lookup is case-insensitive.
func (ix *Index) Pillar(id string) (Pillar, bool) {
	p, ok := ix.pillars[key(id)]
	return p, ok
}

// Principle returns the principle with the given id.
func (ix *Index) Principle(id string) (Principle, bool) {
	p, ok := ix.principles[key(id)]
	return p, ok
}

// Measure returns the measure with the given id.
func (ix *Index) Measure(id string) (Measure, bool) {
	m, ok := ix.measures[key(id)]
	return m, ok
}

// Analysis returns the analysis with the given id.
func (ix *Index) Analysis(id string) (Analysis, bool) {
	a, ok := ix.analyses[key(id)]
	return a, ok
}

// Pillars returns all pillars sorted by id.
func (ix *Index) Pillars() []Pillar {
	out := make([]Pillar, 0, len(ix.pillars))
	for _, p := range ix.pillars {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Principles returns all principles sorted by id.
func (ix *Index) Principles() []Principle {
	out := make([]Principle, 0, len(ix.principles))
	for _, p := range ix.principles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Measures returns all measures sorted by id.
func (ix *Index) Measures() []Measure {
	out := make([]Measure, 0, len(ix.measures))
	for _, m := range ix.measures {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// PrinciplesOf returns the principles belonging to a pillar, sorted by id.
// Unknown pillar ids yield an empty slice, never an error.
func (ix *Index) PrinciplesOf(pillarID string) []Principle {
	ids := ix.principlesByPillar[key(pillarID)]
	out := make([]Principle, 0, len(ids))
	for _, id := range ids {
		out = append(out, ix.principles[id])
	}
	return out
}

// MeasuresOf returns the measures belonging to a principle, sorted by id.
func (ix *Index) MeasuresOf(principleID string) []Measure {
	ids := ix.measuresByPrinciple[key(principleID)]
	out := make([]Measure, 0, len(ids))
	for _, id := range ids {
		out = append(out, ix.measures[id])
	}
	return out
}

// MeasuresOfPillar returns the measures belonging to a pillar, sorted by id.
func (ix *Index) MeasuresOfPillar(pillarID string) []Measure {
	ids := ix.measuresByPillar[key(pillarID)]
	out := make([]Measure, 0, len(ids))
	for _, id := range ids {
		out = append(out, ix.measures[id])
	}
	return out
}

// AnalysesOf returns the analyses owned by a measure, sorted by id.
func (ix *Index) AnalysesOf(measureID string) []Analysis {
	ids := ix.analysesByMeasure[key(measureID)]
	out := make([]Analysis, 0, len(ids))
	for _, id := range ids {
		out = append(out, ix.analyses[id])
	}
	return out
}

// SearchMeasures returns measures whose id, best practice, capabilities, or
// details contain the term (case-insensitive), sorted by id. An empty or
// whitespace-only term matches nothing.
func (ix *Index) SearchMeasures(term string) []Measure {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return nil
	}
	var out []Measure
	for _, m := range ix.measures {
		if strings.Contains(strings.ToLower(m.ID), needle) ||
			strings.Contains(strings.ToLower(m.BestPractice), needle) ||
			strings.Contains(strings.ToLower(m.Capabilities), needle) ||
			strings.Contains(strings.ToLower(m.Details), needle) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// SearchPrinciples returns principles whose id or description contain the
// term (case-insensitive), sorted by id. Empty terms match nothing.
func (ix *Index) SearchPrinciples(term string) []Principle {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return nil
	}
	var out []Principle
	for _, p := range ix.principles {
		if strings.Contains(strings.ToLower(p.ID), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// MeasuresWithAnalyses returns all measures owning at least one analysis,
// sorted by measure id.
func (ix *Index) MeasuresWithAnalyses() []Measure {
	var out []Measure
	for id := range ix.analysesByMeasure {
		if m, ok := ix.measures[id]; ok {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Stats returns counts for each entity kind.
func (ix *Index) Stats() Stats {
	return Stats{
		Pillars:    len(ix.pillars),
		Principles: len(ix.principles),
		Measures:   len(ix.measures),
		Analyses:   len(ix.analyses),
	}
}
