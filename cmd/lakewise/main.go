// Lakewise: Well-Architected Framework MCP Server
//
// An MCP server that gives AI agents access to a lakehouse
// well-architected reference catalog and a fixed set of read-only
// diagnostic queries against the telemetry warehouse.
//
// Usage:
//
//	lakewise serve     # Start MCP server (stdio transport)
//	lakewise version   # Print version
package main

import (
	"fmt"
	"log/slog"
	"os"

	wafserver "github.com/lakewise/lakewise/internal/server"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		if err := run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "--help", "-h", "help":
		printUsage()
		os.Exit(0)
	case "--version", "-v", "version":
		fmt.Printf("lakewise v%s\n", wafserver.Version)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func run() error {
	// Logs go to stderr — stdout belongs to the MCP stdio transport.
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	s, cleanup, err := wafserver.New(log)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}
	defer cleanup()

	return server.ServeStdio(s)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Lakewise v%s — Well-Architected Framework MCP Server

Usage:
  lakewise serve     Start the MCP server (stdio transport)
  lakewise version   Print version

Configuration (env, or lakewise.yaml in the working directory):
  LAKEWISE_WAREHOUSE_DRIVER   database/sql driver: pgx (default) or sqlite
  LAKEWISE_WAREHOUSE_DSN      warehouse connection string; ${token} is
                              replaced by LAKEWISE_WAREHOUSE_TOKEN
  LAKEWISE_WAREHOUSE_TOKEN    externally supplied credential

  Add to your AI tool's MCP config:

  {
    "mcpServers": {
      "lakewise": {
        "command": "lakewise",
        "args": ["serve"]
      }
    }
  }
`, wafserver.Version)
}
