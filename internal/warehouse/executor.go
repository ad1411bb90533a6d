// Package warehouse executes read-only diagnostic queries against the
// lakehouse telemetry warehouse and renders the results as text for a
// language-model agent.
//
// The executor speaks database/sql: the production warehouse is reached
// through the pgx driver, and a local telemetry snapshot can be queried
// through the sqlite driver. Exactly one query runs per call — no retries,
// no background work.
package warehouse

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver
	_ "modernc.org/sqlite"             // register sqlite for local snapshots
)

// Sentinel errors classifying per-call failures. Both are recoverable —
// they are rendered as text at the ExecuteFormatted boundary and never
// cross into the tool facade as Go errors.
var (
	// ErrBackendConnection indicates the warehouse cannot be reached or
	// the connection could not be authenticated.
	ErrBackendConnection = errors.New("cannot connect to the analytics warehouse")

	// ErrQueryExecution indicates the warehouse rejected the query.
	ErrQueryExecution = errors.New("warehouse query failed")
)

// NoDataMessage is returned by ExecuteFormatted when a query yields zero
// rows. It is a fixed sentinel, not an error.
const NoDataMessage = "No data found for the specified query"

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// Formatter turns a rectangular result set into text. Implementations must
// be pure: same rows and labels in, same text out.
type Formatter func(rows [][]any, columns []string) string

// Executor runs queries against one configured warehouse connection.
type Executor struct {
	db *sql.DB
}

// Open creates an executor for the given database/sql driver and DSN.
// Opening is lazy in database/sql, so a wrong DSN surfaces on the first
// Execute call, not here.
func Open(driver, dsn string) (*Executor, error) {
	db, err := openDB(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackendConnection, err)
	}
	return &Executor{db: db}, nil
}

// Close releases the underlying connection pool.
func (e *Executor) Close() error {
	return e.db.Close()
}

// Execute runs one query and returns the full result set with its column
// labels. The rows cursor is always released, on success and on every
// error path.
func (e *Executor) Execute(ctx context.Context, query string) ([][]any, []string, error) {
	if err := e.db.PingContext(ctx); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrBackendConnection, err)
	}

	rows, err := e.db.QueryContext(ctx, query)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrQueryExecution, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrQueryExecution, err)
	}

	var out [][]any
	for rows.Next() {
		cells := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range cells {
			ptrs[i] = &cells[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrQueryExecution, err)
		}
		out = append(out, cells)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrQueryExecution, err)
	}
	return out, columns, nil
}

// ExecuteFormatted runs one query and renders the result. Zero rows yield
// NoDataMessage without invoking the formatter. A nil formatter falls back
// to the default tabular grid. Failures are rendered as a short error
// string in place of data — this is the boundary where backend errors stop
// propagating.
func (e *Executor) ExecuteFormatted(ctx context.Context, query string, format Formatter) string {
	rows, columns, err := e.Execute(ctx, query)
	if err != nil {
		return err.Error()
	}
	if len(rows) == 0 {
		return NoDataMessage
	}
	if format == nil {
		format = FormatTable
	}
	return format(rows, columns)
}
