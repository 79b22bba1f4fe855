package store

import "context"

// Column describes one column of a table in the transaction database.
type Column struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// ExecutionStore runs classified SQL against the transaction database. Every
// statement executes inside its own transaction; a failure rolls back and is
// reported through the apperr taxonomy, never retried.
type ExecutionStore interface {
	// Exec runs a mutation statement and commits it.
	Exec(ctx context.Context, sql string) error

	// Query runs a select statement and materializes the full result set as
	// column-name to value mappings, keyed by the result's own column set.
	Query(ctx context.Context, sql string, args ...interface{}) ([]map[string]interface{}, error)

	// Tables enumerates the table names of the transaction database.
	Tables(ctx context.Context) ([]string, error)

	// Columns enumerates a table's columns with their type strings.
	Columns(ctx context.Context, table string) ([]Column, error)
}
