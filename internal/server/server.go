// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it loads the configuration, builds the
// framework index and the warehouse executor once, and injects them into
// the tools, prompts, and resources. No business logic lives here — only
// wiring. Reference data problems abort startup; a missing warehouse does
// not (browse tools work without one).
package server

import (
	"fmt"
	"log/slog"

	"github.com/lakewise/lakewise/internal/config"
	"github.com/lakewise/lakewise/internal/framework"
	"github.com/lakewise/lakewise/internal/prompts"
	"github.com/lakewise/lakewise/internal/queries"
	"github.com/lakewise/lakewise/internal/resources"
	"github.com/lakewise/lakewise/internal/tools"
	"github.com/lakewise/lakewise/internal/warehouse"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools, prompts, and
// resources registered. This is the single place where all dependencies
// are resolved.
//
// The returned cleanup function closes the warehouse connection pool and
// must be called on shutdown (typically via defer). It is always non-nil
// and safe to call even when no warehouse was configured.
func New(log *slog.Logger) (*server.MCPServer, func(), error) {
	cfg, err := config.Load("")
	if err != nil {
		return nil, noop, fmt.Errorf("loading configuration: %w", err)
	}

	// The reference data is the whole point of the server: if it does not
	// load, fail fast and serve nothing.
	index, err := framework.LoadEmbedded()
	if err != nil {
		return nil, noop, fmt.Errorf("loading framework data: %w", err)
	}
	stats := index.Stats()
	log.Info("framework data loaded",
		"pillars", stats.Pillars,
		"principles", stats.Principles,
		"measures", stats.Measures,
		"analyses", stats.Analyses,
	)

	catalog := queries.NewCatalog()

	// The warehouse is optional at startup. The executor holds a lazy
	// pool, so a bad DSN surfaces per analysis call, not here.
	cleanup := noop
	var runner tools.QueryRunner
	if cfg.Warehouse.DSN != "" {
		executor, err := warehouse.Open(cfg.Warehouse.Driver, cfg.ResolvedDSN())
		if err != nil {
			return nil, noop, fmt.Errorf("opening warehouse: %w", err)
		}
		runner = executor
		cleanup = func() {
			if err := executor.Close(); err != nil {
				log.Warn("warehouse close", "error", err)
			}
		}
		log.Info("warehouse configured", "driver", cfg.Warehouse.Driver)
	} else {
		log.Warn("no warehouse configured; analysis tools will report it per call")
	}

	s := server.NewMCPServer(
		"lakewise",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Register framework browse tools ---

	getPillar := tools.NewGetPillarTool(index)
	s.AddTool(getPillar.Definition(), getPillar.Handle)

	getPrinciple := tools.NewGetPrincipleTool(index)
	s.AddTool(getPrinciple.Definition(), getPrinciple.Handle)

	getMeasure := tools.NewGetMeasureTool(index)
	s.AddTool(getMeasure.Definition(), getMeasure.Handle)

	listPillars := tools.NewListPillarsTool(index)
	s.AddTool(listPillars.Definition(), listPillars.Handle)

	listPrinciples := tools.NewListPrinciplesTool(index)
	s.AddTool(listPrinciples.Definition(), listPrinciples.Handle)

	searchMeasures := tools.NewSearchMeasuresTool(index)
	s.AddTool(searchMeasures.Definition(), searchMeasures.Handle)

	searchPrinciples := tools.NewSearchPrinciplesTool(index)
	s.AddTool(searchPrinciples.Definition(), searchPrinciples.Handle)

	listAnalyses := tools.NewListAnalysesTool(index)
	s.AddTool(listAnalyses.Definition(), listAnalyses.Handle)

	runAnalysis := tools.NewRunAnalysisTool(index, runner)
	s.AddTool(runAnalysis.Definition(), runAnalysis.Handle)

	// --- Register named analysis tools ---
	//
	// One no-argument tool per catalog entry, from the static table in
	// internal/tools. The runner may be nil; the tools handle that.

	for _, spec := range tools.BuiltinAnalyses() {
		tool := tools.NewAnalysisTool(spec, catalog, runner)
		s.AddTool(tool.Definition(), tool.Handle)
	}

	// --- Register prompts ---

	review := prompts.NewReviewPrompt()
	s.AddPrompt(review.Definition(), review.Handle)

	// --- Register resources ---

	resourceHandler := resources.NewHandler(index)
	s.AddResource(resourceHandler.StatsResource(), resourceHandler.HandleStats)

	return s, cleanup, nil
}

// noop is the default cleanup when no warehouse connection exists.
func noop() {}

// serverInstructions returns the system instructions that tell the AI how
// to use the server effectively.
func serverInstructions() string {
	return `You have access to Lakewise, a well-architected framework advisor for the lakehouse.

## What it provides

1. A reference catalog of architectural best practices, organized as
   Pillars → Principles → Measures → Analyses. Browse it with
   waf_list_pillars, waf_get_pillar, waf_get_principle, waf_get_measure,
   and search it with waf_search_measures / waf_search_principles.

2. Read-only diagnostic queries over the lakehouse's system telemetry
   (billing, compute, audit tables). Run them with the dedicated
   waf_co_* tools or with waf_run_analysis(analysis_id).

## How to work

- Start from the catalog, not the queries: find the measure relevant to
  the user's question, then run the analyses bound to it.
- Measure IDs encode the hierarchy: CO-01-01 is measure 01 of principle
  CO-01 in the Cost Optimization pillar.
- Analysis results are point-in-time reads of the telemetry warehouse.
  If a query fails because the warehouse is unreachable, say so and fall
  back to the catalog's guidance. Never invent numbers.
- Use the waf-review prompt for a full pillar review.

## Boundaries

All tools are read-only. Lakewise never modifies the lakehouse, never
generates SQL, and only runs the fixed queries it ships with.`
}
