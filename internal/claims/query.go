package claims

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ziadkadry99/claimpilot/internal/db"
)

// ErrNotReadOnly is the fixed rejection returned when a non-SELECT statement
// reaches the executor.
var ErrNotReadOnly = errors.New("Error: Only SELECT queries are allowed for retrieval.")

// forbiddenKeywords are mutating SQL keywords that must never appear in a
// generated query. Checked in addition to the SELECT prefix requirement.
var forbiddenKeywords = []string{
	"DELETE", "UPDATE", "INSERT", "DROP", "ALTER", "CREATE", "TRUNCATE",
}

// ValidateReadOnly checks that the query is a plain SELECT statement with no
// mutating keywords. Applied both to query oracle output and, again, to
// executor input.
func ValidateReadOnly(query string) error {
	upper := strings.ToUpper(strings.TrimSpace(query))
	if !strings.HasPrefix(upper, "SELECT") {
		return fmt.Errorf("query must be a SELECT statement")
	}
	for _, kw := range forbiddenKeywords {
		if strings.Contains(upper, kw) {
			return fmt.Errorf("query contains forbidden keyword %s", kw)
		}
	}
	return nil
}

// Executor runs validated read-only queries against the claim database.
type Executor struct {
	db *db.DB
}

// NewExecutor creates an Executor over the store's database.
func NewExecutor(store *Store) *Executor {
	return &Executor{db: store.db}
}

// Run executes a read-only query and returns its rows in order. Non-SELECT
// statements are rejected before execution with ErrNotReadOnly.
func (e *Executor) Run(ctx context.Context, query string) ([]Row, error) {
	if err := ValidateReadOnly(query); err != nil {
		return nil, ErrNotReadOnly
	}
	return e.collect(ctx, query)
}

// Explain runs EXPLAIN QUERY PLAN for a query, for debugging generated SQL.
func (e *Executor) Explain(ctx context.Context, query string) ([]Row, error) {
	if err := ValidateReadOnly(query); err != nil {
		return nil, ErrNotReadOnly
	}
	return e.collect(ctx, "EXPLAIN QUERY PLAN "+query)
}

func (e *Executor) collect(ctx context.Context, query string) ([]Row, error) {
	rows, err := e.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("executing query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading columns: %w", err)
	}

	results := []Row{}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		row := make(Row, len(cols))
		for i, col := range cols {
			v := values[i]
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			row[col] = v
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
